package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type SitePlanRepository struct {
	db *gorm.DB
}

func NewSitePlanRepository(db *gorm.DB) *SitePlanRepository {
	return &SitePlanRepository{db: db}
}

// Create inserts the plan and its initial owner rows in one transaction.
func (r *SitePlanRepository) Create(ctx context.Context, plan *model.SitePlan, owners []model.SitePlanOwner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owners").Create(plan).Error; err != nil {
			return err
		}
		for i := range owners {
			owners[i].SitePlanID = plan.ID
			if err := tx.Create(&owners[i]).Error; err != nil {
				return err
			}
		}
		plan.Owners = owners
		return nil
	})
}

func (r *SitePlanRepository) GetByProject(ctx context.Context, projectID uint) (*model.SitePlan, error) {
	var plan model.SitePlan
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *SitePlanRepository) Save(ctx context.Context, plan *model.SitePlan) error {
	return r.db.WithContext(ctx).Omit("Owners").Save(plan).Error
}

func (r *SitePlanRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.SitePlan{}).Error
}

func (r *SitePlanRepository) ListOwners(ctx context.Context, sitePlanID uint) ([]model.SitePlanOwner, error) {
	var owners []model.SitePlanOwner
	err := r.db.WithContext(ctx).
		Where("site_plan_id = ?", sitePlanID).
		Order("id ASC").
		Find(&owners).Error
	if err != nil {
		return nil, err
	}
	return owners, nil
}

// ReplaceOwners swaps the full owner set atomically: delete everything,
// recreate from the given rows. Partial merges are not supported.
func (r *SitePlanRepository) ReplaceOwners(ctx context.Context, sitePlanID uint, owners []model.SitePlanOwner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_plan_id = ?", sitePlanID).Delete(&model.SitePlanOwner{}).Error; err != nil {
			return err
		}
		for i := range owners {
			owners[i].ID = 0
			owners[i].SitePlanID = sitePlanID
			if err := tx.Create(&owners[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
