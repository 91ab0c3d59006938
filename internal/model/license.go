package model

import "time"

type BuildingLicense struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"column:project_id;uniqueIndex" json:"project_id"`

	// License details
	LicenseNo            string     `gorm:"column:license_no" json:"license_no"`
	IssueDate            *time.Time `gorm:"column:issue_date" json:"issue_date"`
	ExpiryDate           *time.Time `gorm:"column:expiry_date" json:"expiry_date"`
	LastIssueDate        *time.Time `gorm:"column:last_issue_date" json:"last_issue_date"`
	LicenseStage         string     `gorm:"column:license_stage" json:"license_stage"`
	LicenseStatus        string     `gorm:"column:license_status" json:"license_status"`
	ProjectDescription   string     `gorm:"column:project_description" json:"project_description"`
	TechnicalDecisionRef string     `gorm:"column:technical_decision_ref" json:"technical_decision_ref"`
	TechnicalDecisionAt  *time.Time `gorm:"column:technical_decision_at" json:"technical_decision_at"`

	// Plot / land (re-entered, not read from the site plan)
	City        string   `gorm:"column:city" json:"city"`
	Zone        string   `gorm:"column:zone" json:"zone"`
	Sector      string   `gorm:"column:sector" json:"sector"`
	PlotNo      string   `gorm:"column:plot_no" json:"plot_no"`
	PlotAddress string   `gorm:"column:plot_address" json:"plot_address"`
	PlotAreaSqm *float64 `gorm:"column:plot_area_sqm" json:"plot_area_sqm"`

	// Parties
	OwnerName           string `gorm:"column:owner_name" json:"owner_name"`
	ConsultantName      string `gorm:"column:consultant_name" json:"consultant_name"`
	ConsultantLicenseNo string `gorm:"column:consultant_license_no" json:"consultant_license_no"`
	ContractorName      string `gorm:"column:contractor_name" json:"contractor_name"`
	ContractorLicenseNo string `gorm:"column:contractor_license_no" json:"contractor_license_no"`

	Notes string `gorm:"column:notes" json:"notes"`

	// Owners is a free-form copy of owner data carried on the license
	// itself, not a live relation to the site plan owners.
	Owners OwnerList `gorm:"column:owners;type:jsonb" json:"owners"`

	// SitePlanSnapshot is written once when the license is created and is
	// never touched by later site plan edits. Only the restore-owners
	// operation rebuilds it.
	SitePlanSnapshot SitePlanSnapshot `gorm:"column:siteplan_snapshot;type:jsonb" json:"siteplan_snapshot"`

	LicenseFileID *uint `gorm:"column:license_file_id" json:"license_file_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BuildingLicense) TableName() string { return "building_licenses" }
