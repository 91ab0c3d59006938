package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type AwardingRepository struct {
	db *gorm.DB
}

func NewAwardingRepository(db *gorm.DB) *AwardingRepository {
	return &AwardingRepository{db: db}
}

func (r *AwardingRepository) Create(ctx context.Context, awarding *model.Awarding) error {
	return r.db.WithContext(ctx).Create(awarding).Error
}

func (r *AwardingRepository) GetByProject(ctx context.Context, projectID uint) (*model.Awarding, error) {
	var awarding model.Awarding
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&awarding).Error; err != nil {
		return nil, err
	}
	return &awarding, nil
}

func (r *AwardingRepository) Save(ctx context.Context, awarding *model.Awarding) error {
	return r.db.WithContext(ctx).Save(awarding).Error
}

func (r *AwardingRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.Awarding{}).Error
}
