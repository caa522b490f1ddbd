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

type inquiryRepository struct {
	inquiries *documentCollection[entity.Inquiry]
}

// NewInquiryRepository создает репозиторий заявок
// Индекс по email нужен для выборки заявок конкретного пользователя
func NewInquiryRepository(db *mongo.Database) InquiryRepository {
	inquiries := newDocumentCollection[entity.Inquiry](db, "inquiries")

	inquiries.ensureIndexes(mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("email_created_idx"),
	})

	return &inquiryRepository{inquiries: inquiries}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now().UTC()
	}

	oid, err := r.inquiries.insert(ctx, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	inquiry.ID = oid
	return nil
}

func (r *inquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	return r.inquiries.findByID(ctx, id)
}

// List возвращает все заявки, новые первыми
func (r *inquiryRepository) List(ctx context.Context) ([]entity.Inquiry, error) {
	return r.inquiries.find(ctx, bson.M{}, newestFirst())
}

func (r *inquiryRepository) ListByEmail(ctx context.Context, email string) ([]entity.Inquiry, error) {
	return r.inquiries.find(ctx, bson.M{"email": email}, newestFirst())
}

func (r *inquiryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Inquiry, error) {
	return r.inquiries.setByID(ctx, id, fields)
}

func (r *inquiryRepository) Delete(ctx context.Context, id string) error {
	return r.inquiries.deleteByID(ctx, id)
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
}
