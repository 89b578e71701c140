package database

import (
	"context"

	"github.com/krishkalaria12/chrono-snap/models"
	"gorm.io/gorm"
)

type TransformationRepository struct {
	db *gorm.DB
}

func NewTransformationRepository(db *gorm.DB) *TransformationRepository {
	return &TransformationRepository{db: db}
}

func (r *TransformationRepository) Create(ctx context.Context, t *models.Transformation) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Recent returns at most limit rows, newest first.
func (r *TransformationRepository) Recent(ctx context.Context, limit int) ([]models.Transformation, error) {
	var out []models.Transformation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
