package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type LicenseService struct {
	projects ProjectRepository
	plans    SitePlanRepository
	licenses LicenseRepository
	files    FileStore
}

func NewLicenseService(projects ProjectRepository, plans SitePlanRepository, licenses LicenseRepository, files FileStore) *LicenseService {
	return &LicenseService{projects: projects, plans: plans, licenses: licenses, files: files}
}

// LicenseInput carries a create or partial-update request for a building
// license. The owners value is the free-form copy carried on the license,
// not the site plan owner relation.
type LicenseInput struct {
	LicenseNo            *string `json:"license_no" form:"license_no"`
	IssueDate            *string `json:"issue_date" form:"issue_date"`
	ExpiryDate           *string `json:"expiry_date" form:"expiry_date"`
	LastIssueDate        *string `json:"last_issue_date" form:"last_issue_date"`
	LicenseStage         *string `json:"license_stage" form:"license_stage"`
	LicenseStatus        *string `json:"license_status" form:"license_status"`
	ProjectDescription   *string `json:"project_description" form:"project_description"`
	TechnicalDecisionRef *string `json:"technical_decision_ref" form:"technical_decision_ref"`
	TechnicalDecisionAt  *string `json:"technical_decision_at" form:"technical_decision_at"`

	City        *string  `json:"city" form:"city"`
	Zone        *string  `json:"zone" form:"zone"`
	Sector      *string  `json:"sector" form:"sector"`
	PlotNo      *string  `json:"plot_no" form:"plot_no"`
	PlotAddress *string  `json:"plot_address" form:"plot_address"`
	PlotAreaSqm *float64 `json:"plot_area_sqm" form:"plot_area_sqm"`

	OwnerName           *string `json:"owner_name" form:"owner_name"`
	ConsultantName      *string `json:"consultant_name" form:"consultant_name"`
	ConsultantLicenseNo *string `json:"consultant_license_no" form:"consultant_license_no"`
	ContractorName      *string `json:"contractor_name" form:"contractor_name"`
	ContractorLicenseNo *string `json:"contractor_license_no" form:"contractor_license_no"`

	Notes         *string `json:"notes" form:"notes"`
	LicenseFileID *uint   `json:"license_file_id" form:"license_file_id"`

	Owners json.RawMessage `json:"owners" form:"-"`
}

func (s *LicenseService) Create(ctx context.Context, projectID uint, input LicenseInput) (*model.BuildingLicense, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	flags, err := s.projects.StageFlags(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if flags.HasLicense {
		return nil, stageConflict(stageLicense)
	}

	license := model.BuildingLicense{ProjectID: projectID}
	if err := applyLicenseInput(&license, input); err != nil {
		return nil, err
	}

	// Snapshot the site plan exactly once, at creation. No site plan means
	// an empty snapshot, not an error.
	plan, err := s.plans.GetByProject(ctx, projectID)
	switch {
	case err == nil:
		owners, err := s.plans.ListOwners(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		license.SitePlanSnapshot = BuildSitePlanSnapshot(plan, owners, s.resolver(ctx))
	case errors.Is(err, gorm.ErrRecordNotFound):
		license.SitePlanSnapshot = model.SitePlanSnapshot{}
	default:
		return nil, err
	}

	if err := s.licenses.Create(ctx, &license); err != nil {
		return nil, mapStageCreateErr(err, stageLicense)
	}
	return &license, nil
}

func (s *LicenseService) Get(ctx context.Context, projectID uint) (*model.BuildingLicense, error) {
	license, err := s.licenses.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return license, nil
}

// Update edits license fields. The siteplan snapshot is deliberately not
// rebuilt here; only RestoreOwners resyncs it.
func (s *LicenseService) Update(ctx context.Context, projectID uint, input LicenseInput) (*model.BuildingLicense, error) {
	license, err := s.licenses.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := applyLicenseInput(license, input); err != nil {
		return nil, err
	}
	if err := s.licenses.Save(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

func (s *LicenseService) Delete(ctx context.Context, projectID uint) error {
	if _, err := s.licenses.GetByProject(ctx, projectID); err != nil {
		return mapNotFound(err)
	}
	return s.licenses.DeleteByProject(ctx, projectID)
}

// RestoreOwners rebuilds the site plan owner set from the license's
// embedded owner copy, re-derives the project display name, and resyncs the
// license's siteplan snapshot. Returns the number of restored owners.
func (s *LicenseService) RestoreOwners(ctx context.Context, projectID uint) (int, error) {
	license, err := s.licenses.GetByProject(ctx, projectID)
	if err != nil {
		return 0, mapNotFound(err)
	}
	plan, err := s.plans.GetByProject(ctx, projectID)
	if err != nil {
		return 0, mapNotFound(err)
	}
	if len(license.Owners) == 0 {
		return 0, fieldErr("owners", "no owners found in license")
	}

	owners := make([]model.SitePlanOwner, 0, len(license.Owners))
	for _, record := range license.Owners {
		rightHold := record.RightHoldType
		if rightHold == "" {
			rightHold = "Ownership"
		}
		owners = append(owners, model.SitePlanOwner{
			OwnerNameAR:     record.OwnerNameAR,
			OwnerNameEN:     record.OwnerNameEN,
			Nationality:     record.Nationality,
			Phone:           record.Phone,
			Email:           record.Email,
			IDNumber:        record.IDNumber,
			IDIssueDate:     parseDatePtr(string(record.IDIssueDate)),
			IDExpiryDate:    parseDatePtr(string(record.IDExpiryDate)),
			RightHoldType:   rightHold,
			SharePossession: record.SharePossession,
			SharePercent:    record.SharePercent.Float(100),
		})
	}

	if err := s.plans.ReplaceOwners(ctx, plan.ID, owners); err != nil {
		return 0, err
	}
	restored, err := s.plans.ListOwners(ctx, plan.ID)
	if err != nil {
		return 0, err
	}
	if err := s.projects.SetDisplayName(ctx, projectID, DeriveDisplayName(projectID, restored)); err != nil {
		return 0, err
	}

	snapshot := BuildSitePlanSnapshot(plan, restored, s.resolver(ctx))
	if err := s.licenses.SetSitePlanSnapshot(ctx, license.ID, snapshot); err != nil {
		return 0, err
	}
	return len(restored), nil
}

func (s *LicenseService) resolver(ctx context.Context) FileResolver {
	return func(fileID *uint) *string {
		if fileID == nil || s.files == nil {
			return nil
		}
		return s.files.URLFor(ctx, *fileID)
	}
}

func applyLicenseInput(license *model.BuildingLicense, input LicenseInput) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&license.LicenseNo, input.LicenseNo)
	setString(&license.LicenseStage, input.LicenseStage)
	setString(&license.LicenseStatus, input.LicenseStatus)
	setString(&license.ProjectDescription, input.ProjectDescription)
	setString(&license.TechnicalDecisionRef, input.TechnicalDecisionRef)
	setString(&license.City, input.City)
	setString(&license.Zone, input.Zone)
	setString(&license.Sector, input.Sector)
	setString(&license.PlotNo, input.PlotNo)
	setString(&license.PlotAddress, input.PlotAddress)
	setString(&license.OwnerName, input.OwnerName)
	setString(&license.ConsultantName, input.ConsultantName)
	setString(&license.ConsultantLicenseNo, input.ConsultantLicenseNo)
	setString(&license.ContractorName, input.ContractorName)
	setString(&license.ContractorLicenseNo, input.ContractorLicenseNo)
	setString(&license.Notes, input.Notes)

	if input.IssueDate != nil {
		license.IssueDate = parseDatePtr(*input.IssueDate)
	}
	if input.ExpiryDate != nil {
		license.ExpiryDate = parseDatePtr(*input.ExpiryDate)
	}
	if input.LastIssueDate != nil {
		license.LastIssueDate = parseDatePtr(*input.LastIssueDate)
	}
	if input.TechnicalDecisionAt != nil {
		license.TechnicalDecisionAt = parseDatePtr(*input.TechnicalDecisionAt)
	}
	if input.PlotAreaSqm != nil {
		license.PlotAreaSqm = input.PlotAreaSqm
	}
	if input.LicenseFileID != nil {
		license.LicenseFileID = input.LicenseFileID
	}

	if len(input.Owners) > 0 && string(input.Owners) != "null" {
		var records model.OwnerList
		if err := json.Unmarshal(input.Owners, &records); err != nil {
			// Free-form copy: a malformed owners blob degrades to an
			// empty list instead of rejecting the whole request.
			records = model.OwnerList{}
		}
		license.Owners = records
	}

	if license.IssueDate != nil && license.LastIssueDate != nil && license.LastIssueDate.After(*license.IssueDate) {
		return fieldErr("last_issue_date", "must not be after issue_date")
	}
	if license.IssueDate != nil && license.ExpiryDate != nil && license.ExpiryDate.Before(*license.IssueDate) {
		return fieldErr("expiry_date", "must not be before issue_date")
	}
	return nil
}
