package model

import "time"

type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeMixed       ProjectType = "mixed"
)

type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

type Project struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"column:name" json:"name"`
	Type         ProjectType   `gorm:"column:type" json:"type"`
	Category     string        `gorm:"column:category" json:"category"`
	ContractType string        `gorm:"column:contract_type" json:"contract_type"`
	Status       ProjectStatus `gorm:"column:status" json:"status"`
	InternalCode string        `gorm:"column:internal_code" json:"internal_code"`
	DisplayName  string        `gorm:"column:display_name" json:"display_name"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// ProjectView is the API representation of a Project together with the
// stage-derived fields that are computed on read, never stored.
type ProjectView struct {
	Project
	HasSitePlan bool `json:"has_siteplan"`
	HasLicense  bool `json:"has_license"`
	HasContract bool `json:"has_contract"`
	HasAwarding bool `json:"has_awarding"`
	Completion  int  `json:"completion"`
}
