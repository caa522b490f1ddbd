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

type universityRepository struct {
	universities *documentCollection[entity.University]
}

// NewUniversityRepository создает репозиторий университетов
func NewUniversityRepository(db *mongo.Database) UniversityRepository {
	universities := newDocumentCollection[entity.University](db, "universities")

	universities.ensureIndexes(mongo.IndexModel{
		Keys:    bson.D{{Key: "ranking", Value: 1}},
		Options: options.Index().SetName("ranking_idx"),
	})

	return &universityRepository{universities: universities}
}

func (r *universityRepository) Create(ctx context.Context, university *entity.University) error {
	if university.CreatedAt.IsZero() {
		university.CreatedAt = time.Now().UTC()
	}

	oid, err := r.universities.insert(ctx, university)
	if err != nil {
		return fmt.Errorf("failed to create university: %w", err)
	}

	university.ID = oid
	return nil
}

func (r *universityRepository) GetByID(ctx context.Context, id string) (*entity.University, error) {
	return r.universities.findByID(ctx, id)
}

// List сортирует по рейтингу по возрастанию
// Университеты без ranking MongoDB отдает первыми
func (r *universityRepository) List(ctx context.Context) ([]entity.University, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ranking", Value: 1}, {Key: "_id", Value: 1}})
	return r.universities.find(ctx, bson.M{}, opts)
}

func (r *universityRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.University, error) {
	return r.universities.setByID(ctx, id, fields)
}

func (r *universityRepository) Delete(ctx context.Context, id string) error {
	return r.universities.deleteByID(ctx, id)
}
