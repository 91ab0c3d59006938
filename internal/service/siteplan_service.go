package service

import (
	"context"
	"encoding/json"

	"github.com/omran/construction-projects/internal/model"
)

type SitePlanService struct {
	projects ProjectRepository
	plans    SitePlanRepository
	files    FileStore
}

func NewSitePlanService(projects ProjectRepository, plans SitePlanRepository, files FileStore) *SitePlanService {
	return &SitePlanService{projects: projects, plans: plans, files: files}
}

// SitePlanInput carries a create or partial-update request. Nil fields are
// left untouched; an explicitly supplied owners value (even an empty list)
// replaces the whole owner set.
type SitePlanInput struct {
	Municipality *string `json:"municipality" form:"municipality"`
	Zone         *string `json:"zone" form:"zone"`
	Sector       *string `json:"sector" form:"sector"`
	RoadName     *string `json:"road_name" form:"road_name"`

	PlotAreaSqm  *float64 `json:"plot_area_sqm" form:"plot_area_sqm"`
	PlotAreaSqft *float64 `json:"plot_area_sqft" form:"plot_area_sqft"`

	LandNo      *string `json:"land_no" form:"land_no"`
	PlotAddress *string `json:"plot_address" form:"plot_address"`

	ConstructionStatus *string `json:"construction_status" form:"construction_status"`
	AllocationType     *string `json:"allocation_type" form:"allocation_type"`
	AllocationDate     *string `json:"allocation_date" form:"allocation_date"`
	LandUse            *string `json:"land_use" form:"land_use"`
	BaseDistrict       *string `json:"base_district" form:"base_district"`
	OverlayDistrict    *string `json:"overlay_district" form:"overlay_district"`

	ProjectNo     *string `json:"project_no" form:"project_no"`
	ProjectName   *string `json:"project_name" form:"project_name"`
	DeveloperName *string `json:"developer_name" form:"developer_name"`

	Notes             *string `json:"notes" form:"notes"`
	ApplicationNumber *string `json:"application_number" form:"application_number"`
	ApplicationDate   *string `json:"application_date" form:"application_date"`
	ApplicationFileID *uint   `json:"application_file_id" form:"application_file_id"`

	OwnersRaw json.RawMessage `json:"owners" form:"-"`
}

// SetOwners overrides the owners value, used by the multipart form path
// where owner rows arrive as flattened keys.
func (in *SitePlanInput) SetOwners(payloads []OwnerPayload) {
	raw, err := json.Marshal(payloads)
	if err != nil {
		return
	}
	in.OwnersRaw = raw
}

func (s *SitePlanService) Create(ctx context.Context, projectID uint, input SitePlanInput) (*model.SitePlan, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	flags, err := s.projects.StageFlags(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if flags.HasSitePlan {
		return nil, stageConflict(stageSitePlan)
	}

	plan := model.SitePlan{ProjectID: projectID}
	applySitePlanInput(&plan, input)

	payloads, _ := DecodeOwners(input.OwnersRaw)
	owners, err := NormalizeOwners(payloads)
	if err != nil {
		return nil, err
	}

	if err := s.plans.Create(ctx, &plan, owners); err != nil {
		return nil, mapStageCreateErr(err, stageSitePlan)
	}

	if err := s.refreshDisplayName(ctx, &plan); err != nil {
		return nil, err
	}
	return s.reload(ctx, projectID)
}

func (s *SitePlanService) Get(ctx context.Context, projectID uint) (*model.SitePlan, error) {
	return s.reload(ctx, projectID)
}

func (s *SitePlanService) Update(ctx context.Context, projectID uint, input SitePlanInput) (*model.SitePlan, error) {
	plan, err := s.plans.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	payloads, supplied := DecodeOwners(input.OwnersRaw)
	var owners []model.SitePlanOwner
	if supplied {
		owners, err = NormalizeOwners(payloads)
		if err != nil {
			return nil, err
		}
	}

	applySitePlanInput(plan, input)
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}

	if supplied {
		if err := s.plans.ReplaceOwners(ctx, plan.ID, owners); err != nil {
			return nil, err
		}
		if err := s.refreshDisplayName(ctx, plan); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, projectID)
}

func (s *SitePlanService) Delete(ctx context.Context, projectID uint) error {
	if _, err := s.plans.GetByProject(ctx, projectID); err != nil {
		return mapNotFound(err)
	}
	if err := s.plans.DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	return s.projects.SetDisplayName(ctx, projectID, fallbackDisplayName(projectID))
}

// Snapshot builds the current point-in-time copy of the project's site plan.
func (s *SitePlanService) Snapshot(ctx context.Context, projectID uint) (model.SitePlanSnapshot, error) {
	plan, err := s.plans.GetByProject(ctx, projectID)
	if err != nil {
		return model.SitePlanSnapshot{}, mapNotFound(err)
	}
	owners, err := s.plans.ListOwners(ctx, plan.ID)
	if err != nil {
		return model.SitePlanSnapshot{}, err
	}
	return BuildSitePlanSnapshot(plan, owners, s.resolver(ctx)), nil
}

func (s *SitePlanService) resolver(ctx context.Context) FileResolver {
	return func(fileID *uint) *string {
		if fileID == nil || s.files == nil {
			return nil
		}
		return s.files.URLFor(ctx, *fileID)
	}
}

func (s *SitePlanService) refreshDisplayName(ctx context.Context, plan *model.SitePlan) error {
	owners, err := s.plans.ListOwners(ctx, plan.ID)
	if err != nil {
		return err
	}
	return s.projects.SetDisplayName(ctx, plan.ProjectID, DeriveDisplayName(plan.ProjectID, owners))
}

func (s *SitePlanService) reload(ctx context.Context, projectID uint) (*model.SitePlan, error) {
	plan, err := s.plans.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	owners, err := s.plans.ListOwners(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Owners = owners
	return plan, nil
}

func applySitePlanInput(plan *model.SitePlan, input SitePlanInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&plan.Municipality, input.Municipality)
	setString(&plan.Zone, input.Zone)
	setString(&plan.Sector, input.Sector)
	setString(&plan.RoadName, input.RoadName)
	setString(&plan.LandNo, input.LandNo)
	setString(&plan.PlotAddress, input.PlotAddress)
	setString(&plan.ConstructionStatus, input.ConstructionStatus)
	setString(&plan.AllocationType, input.AllocationType)
	setString(&plan.LandUse, input.LandUse)
	setString(&plan.BaseDistrict, input.BaseDistrict)
	setString(&plan.OverlayDistrict, input.OverlayDistrict)
	setString(&plan.ProjectNo, input.ProjectNo)
	setString(&plan.ProjectName, input.ProjectName)
	setString(&plan.DeveloperName, input.DeveloperName)
	setString(&plan.Notes, input.Notes)
	setString(&plan.ApplicationNumber, input.ApplicationNumber)

	if input.PlotAreaSqm != nil {
		plan.PlotAreaSqm = input.PlotAreaSqm
	}
	if input.PlotAreaSqft != nil {
		plan.PlotAreaSqft = input.PlotAreaSqft
	}
	if input.AllocationDate != nil {
		plan.AllocationDate = parseDatePtr(*input.AllocationDate)
	}
	if input.ApplicationDate != nil {
		plan.ApplicationDate = parseDatePtr(*input.ApplicationDate)
	}
	if input.ApplicationFileID != nil {
		plan.ApplicationFileID = input.ApplicationFileID
	}
}
