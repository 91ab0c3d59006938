package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type LicenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) Create(ctx context.Context, license *model.BuildingLicense) error {
	return r.db.WithContext(ctx).Create(license).Error
}

func (r *LicenseRepository) GetByProject(ctx context.Context, projectID uint) (*model.BuildingLicense, error) {
	var license model.BuildingLicense
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&license).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

func (r *LicenseRepository) Save(ctx context.Context, license *model.BuildingLicense) error {
	return r.db.WithContext(ctx).Save(license).Error
}

func (r *LicenseRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.BuildingLicense{}).Error
}

func (r *LicenseRepository) SetSitePlanSnapshot(ctx context.Context, id uint, snapshot model.SitePlanSnapshot) error {
	return r.db.WithContext(ctx).
		Model(&model.BuildingLicense{}).
		Where("id = ?", id).
		Update("siteplan_snapshot", snapshot).Error
}
