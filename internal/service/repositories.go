package service

import (
	"context"

	"github.com/omran/construction-projects/internal/model"
)

// StageFlags reports which singleton dependents exist for a project.
type StageFlags struct {
	HasSitePlan bool
	HasLicense  bool
	HasContract bool
	HasAwarding bool
}

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Get(ctx context.Context, id uint) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Save(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	SetDisplayName(ctx context.Context, id uint, name string) error
	StageFlags(ctx context.Context, id uint) (StageFlags, error)
}

type SitePlanRepository interface {
	Create(ctx context.Context, plan *model.SitePlan, owners []model.SitePlanOwner) error
	GetByProject(ctx context.Context, projectID uint) (*model.SitePlan, error)
	Save(ctx context.Context, plan *model.SitePlan) error
	DeleteByProject(ctx context.Context, projectID uint) error
	ListOwners(ctx context.Context, sitePlanID uint) ([]model.SitePlanOwner, error)
	ReplaceOwners(ctx context.Context, sitePlanID uint, owners []model.SitePlanOwner) error
}

type LicenseRepository interface {
	Create(ctx context.Context, license *model.BuildingLicense) error
	GetByProject(ctx context.Context, projectID uint) (*model.BuildingLicense, error)
	Save(ctx context.Context, license *model.BuildingLicense) error
	DeleteByProject(ctx context.Context, projectID uint) error
	SetSitePlanSnapshot(ctx context.Context, id uint, snapshot model.SitePlanSnapshot) error
}

type ContractRepository interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByProject(ctx context.Context, projectID uint) (*model.Contract, error)
	Save(ctx context.Context, contract *model.Contract) error
	DeleteByProject(ctx context.Context, projectID uint) error
}

type AwardingRepository interface {
	Create(ctx context.Context, awarding *model.Awarding) error
	GetByProject(ctx context.Context, projectID uint) (*model.Awarding, error)
	Save(ctx context.Context, awarding *model.Awarding) error
	DeleteByProject(ctx context.Context, projectID uint) error
}

// FileStore resolves stored file IDs to public URLs. Unknown or missing
// files resolve to nil; snapshot building is null-safe throughout.
type FileStore interface {
	URLFor(ctx context.Context, fileID uint) *string
}
