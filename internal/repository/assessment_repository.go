package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/Careerly/internal/model"
	"gorm.io/gorm"
)

// AssessmentRepository reads and writes assessments scoped to their owner.
// Every lookup by id also filters by owner, so a record owned by someone
// else is indistinguishable from a missing one (gorm.ErrRecordNotFound).
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*model.Assessment, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]model.Assessment, error)
	UpdateScore(ctx context.Context, assessment *model.Assessment, ownerID string, score int) error
	DeleteForOwner(ctx context.Context, id uuid.UUID, ownerID string) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepository) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

// UpdateScore overwrites quiz_score. The owner filter is part of the UPDATE
// itself; zero affected rows is reported as gorm.ErrRecordNotFound.
func (r *assessmentRepository) UpdateScore(ctx context.Context, assessment *model.Assessment, ownerID string, score int) error {
	result := r.db.WithContext(ctx).
		Model(assessment).
		Where("user_id = ?", ownerID).
		Update("quiz_score", score)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *assessmentRepository) DeleteForOwner(ctx context.Context, id uuid.UUID, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Assessment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
