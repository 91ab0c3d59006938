package model

import "time"

// ProjectSummary is the fully-assembled document fed to the PDF generator.
type ProjectSummary struct {
	Project  ProjectView
	SitePlan *SitePlan
	Owners   []SitePlanOwner
	License  *BuildingLicense
	Contract *Contract
	Awarding *Awarding
}

// RegisterRow is one project line in the register export.
type RegisterRow struct {
	Project        ProjectView
	OwnerCount     int
	LicenseNo      string
	ContractorName string
	ProjectValue   *float64
}

// RegisterOwnerRow is one owner line on the owners sheet of the register.
type RegisterOwnerRow struct {
	ProjectID     uint
	ProjectName   string
	OwnerNameAR   string
	OwnerNameEN   string
	Nationality   string
	RightHoldType string
	SharePercent  float64
}

// ProjectRegister is the workbook content for the projects export.
type ProjectRegister struct {
	GeneratedAt time.Time
	Rows        []RegisterRow
	Owners      []RegisterOwnerRow
}
