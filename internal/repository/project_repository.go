package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
	"github.com/omran/construction-projects/internal/service"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) Get(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Save(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes the project; dependent stage records go with it through
// the ON DELETE CASCADE constraints.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *ProjectRepository) SetDisplayName(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", id).
		Update("display_name", name).Error
}

// StageFlags probes singleton existence with one count per stage table. A
// zero project ID short-circuits to all-false: an unsaved project has no
// dependents and the probe must not fail.
func (r *ProjectRepository) StageFlags(ctx context.Context, id uint) (service.StageFlags, error) {
	var flags service.StageFlags
	if id == 0 {
		return flags, nil
	}

	exists := func(table string) (bool, error) {
		var count int64
		err := r.db.WithContext(ctx).Table(table).Where("project_id = ?", id).Count(&count).Error
		return count > 0, err
	}

	var err error
	if flags.HasSitePlan, err = exists("site_plans"); err != nil {
		return flags, err
	}
	if flags.HasLicense, err = exists("building_licenses"); err != nil {
		return flags, err
	}
	if flags.HasContract, err = exists("contracts"); err != nil {
		return flags, err
	}
	if flags.HasAwarding, err = exists("awardings"); err != nil {
		return flags, err
	}
	return flags, nil
}
