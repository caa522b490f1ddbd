package repository

import (
	"context"
	"fmt"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	reviews *documentCollection[entity.Review]
}

// NewReviewRepository создает новый репозиторий отзывов
// Уникальный индекс (userId, consultationId) - единственная защита от дублей,
// предварительной проверки перед вставкой нет. Поэтому без него репозиторий не создается
func NewReviewRepository(db *mongo.Database) (ReviewRepository, error) {
	reviews := newDocumentCollection[entity.Review](db, "reviews")

	if err := reviews.ensureUniqueIndex(mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "consultationId", Value: 1},
		},
		Options: options.Index().SetName("user_consultation_unique").SetUnique(true),
	}); err != nil {
		return nil, err
	}

	reviews.ensureIndexes(
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("status_created_idx"),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_idx"),
		},
	)

	return &reviewRepository{reviews: reviews}, nil
}

// Create сохраняет новый отзыв
// Нарушение уникального индекса возвращается как ErrDuplicateReview
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = review.CreatedAt

	oid, err := r.reviews.insert(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	review.ID = oid
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return r.reviews.findByID(ctx, id)
}

// ListApproved возвращает страницу одобренных отзывов и общее количество по фильтру
func (r *reviewRepository) ListApproved(ctx context.Context, query ReviewQuery) ([]entity.Review, int64, error) {
	filter := bson.M{"status": entity.ReviewStatusApproved}
	if query.Rating != nil {
		filter["rating"] = *query.Rating
	}
	if query.ConsultationID != "" {
		filter["consultationId"] = query.ConsultationID
	}

	direction := 1
	if query.SortDesc {
		direction = -1
	}

	// _id вторым ключом - стабильный порядок при равных значениях
	opts := options.Find().
		SetSort(bson.D{{Key: query.SortField, Value: direction}, {Key: "_id", Value: direction}}).
		SetSkip(query.Skip).
		SetLimit(query.Limit)

	reviews, err := r.reviews.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.reviews.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// IncrementVote атомарно увеличивает счетчик голосов на 1
func (r *reviewRepository) IncrementVote(ctx context.Context, id string, field string) (*entity.Review, error) {
	return r.reviews.updateByID(ctx, id, bson.M{"$inc": bson.M{field: 1}})
}

// AddReport добавляет жалобу в массив reports, статус не меняется
func (r *reviewRepository) AddReport(ctx context.Context, id string, report entity.ReviewReport) (*entity.Review, error) {
	return r.reviews.updateByID(ctx, id, bson.M{"$push": bson.M{"reports": report}})
}

// UpdateStatus меняет статус модерации и обновляет updatedAt
func (r *reviewRepository) UpdateStatus(ctx context.Context, id string, status string) (*entity.Review, error) {
	return r.reviews.setByID(ctx, id, map[string]interface{}{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	return r.reviews.count(ctx, bson.M{})
}

// AverageRating - среднее по всем отзывам, 0 если отзывов нет
func (r *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	var result []struct {
		AverageRating float64 `bson:"averageRating"`
	}
	if err := r.reviews.aggregate(ctx, pipeline, &result); err != nil {
		return 0, err
	}

	if len(result) == 0 {
		return 0, nil
	}
	return result[0].AverageRating, nil
}

// CountByRating - гистограмма отзывов по значению оценки
func (r *reviewRepository) CountByRating(ctx context.Context) ([]entity.RatingBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$rating"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
	}

	buckets := make([]entity.RatingBucket, 0)
	if err := r.reviews.aggregate(ctx, pipeline, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *reviewRepository) ListRecent(ctx context.Context, limit int64) ([]entity.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	return r.reviews.find(ctx, bson.M{}, opts)
}

// MonthlyStats группирует отзывы по (год, месяц) создания
// Месяцы без отзывов в результат не попадают
func (r *reviewRepository) MonthlyStats(ctx context.Context, months int64) ([]entity.MonthBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$createdAt"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$createdAt"}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: -1}, {Key: "_id.month", Value: -1}}}},
		{{Key: "$limit", Value: months}},
	}

	buckets := make([]entity.MonthBucket, 0)
	if err := r.reviews.aggregate(ctx, pipeline, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
