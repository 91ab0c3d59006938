package model

import "time"

type SitePlan struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"column:project_id;uniqueIndex" json:"project_id"`

	Municipality string `gorm:"column:municipality" json:"municipality"`
	Zone         string `gorm:"column:zone" json:"zone"`
	Sector       string `gorm:"column:sector" json:"sector"`
	RoadName     string `gorm:"column:road_name" json:"road_name"`

	PlotAreaSqm  *float64 `gorm:"column:plot_area_sqm" json:"plot_area_sqm"`
	PlotAreaSqft *float64 `gorm:"column:plot_area_sqft" json:"plot_area_sqft"`

	LandNo      string `gorm:"column:land_no" json:"land_no"`
	PlotAddress string `gorm:"column:plot_address" json:"plot_address"`

	ConstructionStatus string     `gorm:"column:construction_status" json:"construction_status"`
	AllocationType     string     `gorm:"column:allocation_type" json:"allocation_type"`
	AllocationDate     *time.Time `gorm:"column:allocation_date" json:"allocation_date"`
	LandUse            string     `gorm:"column:land_use" json:"land_use"`
	BaseDistrict       string     `gorm:"column:base_district" json:"base_district"`
	OverlayDistrict    string     `gorm:"column:overlay_district" json:"overlay_district"`

	ProjectNo     string `gorm:"column:project_no" json:"project_no"`
	ProjectName   string `gorm:"column:project_name" json:"project_name"`
	DeveloperName string `gorm:"column:developer_name" json:"developer_name"`

	Notes             string     `gorm:"column:notes" json:"notes"`
	ApplicationNumber string     `gorm:"column:application_number" json:"application_number"`
	ApplicationDate   *time.Time `gorm:"column:application_date" json:"application_date"`
	ApplicationFileID *uint      `gorm:"column:application_file_id" json:"application_file_id"`

	Owners []SitePlanOwner `gorm:"foreignKey:SitePlanID" json:"owners"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SitePlan) TableName() string { return "site_plans" }

type SitePlanOwner struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	SitePlanID uint `gorm:"column:site_plan_id;index" json:"site_plan_id"`

	OwnerNameAR string `gorm:"column:owner_name_ar" json:"owner_name_ar"`
	OwnerNameEN string `gorm:"column:owner_name_en" json:"owner_name_en"`
	Nationality string `gorm:"column:nationality" json:"nationality"`
	Phone       string `gorm:"column:phone" json:"phone"`
	Email       string `gorm:"column:email" json:"email"`

	IDNumber     string     `gorm:"column:id_number" json:"id_number"`
	IDIssueDate  *time.Time `gorm:"column:id_issue_date" json:"id_issue_date"`
	IDExpiryDate *time.Time `gorm:"column:id_expiry_date" json:"id_expiry_date"`

	RightHoldType   string  `gorm:"column:right_hold_type;default:Ownership" json:"right_hold_type"`
	SharePossession string  `gorm:"column:share_possession" json:"share_possession"`
	SharePercent    float64 `gorm:"column:share_percent;default:100" json:"share_percent"`

	IDFileID *uint `gorm:"column:id_file_id" json:"id_file_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SitePlanOwner) TableName() string { return "site_plan_owners" }

// Named reports whether the owner row carries at least one usable name.
func (o SitePlanOwner) Named() bool {
	return o.OwnerNameAR != "" || o.OwnerNameEN != ""
}
