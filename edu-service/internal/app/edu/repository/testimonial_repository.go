package repository

import (
	"context"
	"fmt"
	"time"

	"aussieedu/edu-service/internal/app/edu/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type testimonialRepository struct {
	testimonials *documentCollection[entity.Testimonial]
}

// NewTestimonialRepository создает репозиторий testimonials
func NewTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return &testimonialRepository{
		testimonials: newDocumentCollection[entity.Testimonial](db, "testimonials"),
	}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now().UTC()
	}

	oid, err := r.testimonials.insert(ctx, testimonial)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	testimonial.ID = oid
	return nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	return r.testimonials.findByID(ctx, id)
}

func (r *testimonialRepository) List(ctx context.Context) ([]entity.Testimonial, error) {
	return r.testimonials.find(ctx, bson.M{}, newestFirst())
}

// ListFeatured возвращает истории для слайдера на главной
func (r *testimonialRepository) ListFeatured(ctx context.Context) ([]entity.Testimonial, error) {
	return r.testimonials.find(ctx, bson.M{"featured": true}, newestFirst())
}

func (r *testimonialRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*entity.Testimonial, error) {
	return r.testimonials.setByID(ctx, id, fields)
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	return r.testimonials.deleteByID(ctx, id)
}
