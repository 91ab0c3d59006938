package service

import (
	"sort"

	"github.com/omran/construction-projects/internal/model"
)

// FileResolver maps a stored file ID to its public URL, or nil when the
// file is absent or unknown.
type FileResolver func(fileID *uint) *string

func resolveFile(resolve FileResolver, fileID *uint) *string {
	if resolve == nil || fileID == nil {
		return nil
	}
	return resolve(fileID)
}

// BuildSitePlanSnapshot produces the point-in-time copy of a site plan that
// gets stored on a building license. Pure: the same inputs always yield the
// same structure, owners ordered by ID ascending.
func BuildSitePlanSnapshot(plan *model.SitePlan, owners []model.SitePlanOwner, resolve FileResolver) model.SitePlanSnapshot {
	if plan == nil {
		return model.SitePlanSnapshot{}
	}

	ordered := make([]model.SitePlanOwner, len(owners))
	copy(ordered, owners)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	ownerRows := make([]model.OwnerSnapshot, 0, len(ordered))
	for _, owner := range ordered {
		ownerRows = append(ownerRows, model.OwnerSnapshot{
			OwnerNameAR:     owner.OwnerNameAR,
			OwnerNameEN:     owner.OwnerNameEN,
			Nationality:     owner.Nationality,
			Phone:           owner.Phone,
			Email:           owner.Email,
			IDNumber:        owner.IDNumber,
			IDIssueDate:     isoDate(owner.IDIssueDate),
			IDExpiryDate:    isoDate(owner.IDExpiryDate),
			RightHoldType:   owner.RightHoldType,
			SharePossession: owner.SharePossession,
			SharePercent:    owner.SharePercent,
			IDFile:          resolveFile(resolve, owner.IDFileID),
		})
	}

	notes := plan.Notes
	return model.SitePlanSnapshot{
		Property: &model.PropertySection{
			Municipality:       plan.Municipality,
			Zone:               plan.Zone,
			Sector:             plan.Sector,
			RoadName:           plan.RoadName,
			PlotAreaSqm:        plan.PlotAreaSqm,
			PlotAreaSqft:       plan.PlotAreaSqft,
			LandNo:             plan.LandNo,
			PlotAddress:        plan.PlotAddress,
			ConstructionStatus: plan.ConstructionStatus,
			AllocationType:     plan.AllocationType,
			AllocationDate:     isoDate(plan.AllocationDate),
			LandUse:            plan.LandUse,
			BaseDistrict:       plan.BaseDistrict,
			OverlayDistrict:    plan.OverlayDistrict,
		},
		Developer: &model.DeveloperSection{
			ProjectNo:     plan.ProjectNo,
			ProjectName:   plan.ProjectName,
			DeveloperName: plan.DeveloperName,
		},
		Application: &model.ApplicationSection{
			ApplicationNumber: plan.ApplicationNumber,
			ApplicationDate:   isoDate(plan.ApplicationDate),
			ApplicationFile:   resolveFile(resolve, plan.ApplicationFileID),
		},
		Owners: ownerRows,
		Notes:  &notes,
	}
}

// BuildLicenseSnapshot produces the point-in-time copy of a building license
// that gets stored on a contract. The license's own siteplan snapshot is
// passed through unchanged.
func BuildLicenseSnapshot(license *model.BuildingLicense, resolve FileResolver) model.LicenseSnapshot {
	if license == nil {
		return model.LicenseSnapshot{}
	}

	snapshot := model.LicenseSnapshot{
		License: &model.LicenseSection{
			LicenseNo:            license.LicenseNo,
			IssueDate:            isoDate(license.IssueDate),
			ExpiryDate:           isoDate(license.ExpiryDate),
			LastIssueDate:        isoDate(license.LastIssueDate),
			LicenseStage:         license.LicenseStage,
			LicenseStatus:        license.LicenseStatus,
			ProjectDescription:   license.ProjectDescription,
			TechnicalDecisionRef: license.TechnicalDecisionRef,
			TechnicalDecisionAt:  isoDate(license.TechnicalDecisionAt),
			LicenseFile:          resolveFile(resolve, license.LicenseFileID),
		},
		Land: &model.LandSection{
			City:        license.City,
			Zone:        license.Zone,
			Sector:      license.Sector,
			PlotNo:      license.PlotNo,
			PlotAddress: license.PlotAddress,
			PlotAreaSqm: license.PlotAreaSqm,
		},
		Parties: &model.PartiesSection{
			OwnerName:           license.OwnerName,
			ConsultantName:      license.ConsultantName,
			ConsultantLicenseNo: license.ConsultantLicenseNo,
			ContractorName:      license.ContractorName,
			ContractorLicenseNo: license.ContractorLicenseNo,
		},
	}
	if !license.SitePlanSnapshot.IsEmpty() {
		copied := license.SitePlanSnapshot
		snapshot.SitePlan = &copied
	}
	return snapshot
}
