package repository

import (
	"context"
	"fmt"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type consultationRepository struct {
	consultations *documentCollection[entity.Consultation]
}

// NewConsultationRepository создает репозиторий консультаций
func NewConsultationRepository(db *mongo.Database) ConsultationRepository {
	return &consultationRepository{
		consultations: newDocumentCollection[entity.Consultation](db, "consultations"),
	}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	if consultation.CreatedAt.IsZero() {
		consultation.CreatedAt = time.Now().UTC()
	}

	oid, err := r.consultations.insert(ctx, consultation)
	if err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}

	consultation.ID = oid
	return nil
}

func (r *consultationRepository) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	return r.consultations.findByID(ctx, id)
}

func (r *consultationRepository) List(ctx context.Context) ([]entity.Consultation, error) {
	return r.consultations.find(ctx, bson.M{}, newestFirst())
}

func (r *consultationRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Consultation, error) {
	return r.consultations.setByID(ctx, id, fields)
}

func (r *consultationRepository) Delete(ctx context.Context, id string) error {
	return r.consultations.deleteByID(ctx, id)
}
