package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString accepts a JSON string, number, or null. The license owners copy
// comes from clients that send share percentages and dates either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Float parses the value as a decimal, falling back to def on empty or
// unparseable input.
func (f FlexString) Float(def float64) float64 {
	if f == "" {
		return def
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return def
	}
	return v
}

// OwnerRecord is the free-form owner copy embedded in a building license.
// Dates and the share percentage stay as loosely-typed values until the
// restore operation converts them.
type OwnerRecord struct {
	OwnerNameAR     string     `json:"owner_name_ar"`
	OwnerNameEN     string     `json:"owner_name_en"`
	Nationality     string     `json:"nationality"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	IDNumber        string     `json:"id_number"`
	IDIssueDate     FlexString `json:"id_issue_date"`
	IDExpiryDate    FlexString `json:"id_expiry_date"`
	RightHoldType   string     `json:"right_hold_type"`
	SharePossession string     `json:"share_possession"`
	SharePercent    FlexString `json:"share_percent"`
}

type OwnerList []OwnerRecord

func (l OwnerList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *OwnerList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// OwnerSnapshot is a normalized owner row inside a site plan snapshot:
// dates as ISO-8601 strings or null, share as a number.
type OwnerSnapshot struct {
	OwnerNameAR     string  `json:"owner_name_ar"`
	OwnerNameEN     string  `json:"owner_name_en"`
	Nationality     string  `json:"nationality"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	IDNumber        string  `json:"id_number"`
	IDIssueDate     *string `json:"id_issue_date"`
	IDExpiryDate    *string `json:"id_expiry_date"`
	RightHoldType   string  `json:"right_hold_type"`
	SharePossession string  `json:"share_possession"`
	SharePercent    float64 `json:"share_percent"`
	IDFile          *string `json:"id_file"`
}

type PropertySection struct {
	Municipality       string   `json:"municipality"`
	Zone               string   `json:"zone"`
	Sector             string   `json:"sector"`
	RoadName           string   `json:"road_name"`
	PlotAreaSqm        *float64 `json:"plot_area_sqm"`
	PlotAreaSqft       *float64 `json:"plot_area_sqft"`
	LandNo             string   `json:"land_no"`
	PlotAddress        string   `json:"plot_address"`
	ConstructionStatus string   `json:"construction_status"`
	AllocationType     string   `json:"allocation_type"`
	AllocationDate     *string  `json:"allocation_date"`
	LandUse            string   `json:"land_use"`
	BaseDistrict       string   `json:"base_district"`
	OverlayDistrict    string   `json:"overlay_district"`
}

type DeveloperSection struct {
	ProjectNo     string `json:"project_no"`
	ProjectName   string `json:"project_name"`
	DeveloperName string `json:"developer_name"`
}

type ApplicationSection struct {
	ApplicationNumber string  `json:"application_number"`
	ApplicationDate   *string `json:"application_date"`
	ApplicationFile   *string `json:"application_file"`
}

// SitePlanSnapshot is the point-in-time copy of a site plan stored on a
// building license. A zero value serializes as {}.
type SitePlanSnapshot struct {
	Property    *PropertySection    `json:"property,omitempty"`
	Developer   *DeveloperSection   `json:"developer,omitempty"`
	Application *ApplicationSection `json:"application,omitempty"`
	Owners      []OwnerSnapshot     `json:"owners,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

func (s SitePlanSnapshot) IsEmpty() bool {
	return s.Property == nil && s.Developer == nil && s.Application == nil &&
		len(s.Owners) == 0 && s.Notes == nil
}

func (s SitePlanSnapshot) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *SitePlanSnapshot) Scan(src interface{}) error {
	return scanJSON(src, s)
}

type LicenseSection struct {
	LicenseNo            string  `json:"license_no"`
	IssueDate            *string `json:"issue_date"`
	ExpiryDate           *string `json:"expiry_date"`
	LastIssueDate        *string `json:"last_issue_date"`
	LicenseStage         string  `json:"license_stage"`
	LicenseStatus        string  `json:"license_status"`
	ProjectDescription   string  `json:"project_description"`
	TechnicalDecisionRef string  `json:"technical_decision_ref"`
	TechnicalDecisionAt  *string `json:"technical_decision_at"`
	LicenseFile          *string `json:"license_file"`
}

type LandSection struct {
	City        string   `json:"city"`
	Zone        string   `json:"zone"`
	Sector      string   `json:"sector"`
	PlotNo      string   `json:"plot_no"`
	PlotAddress string   `json:"plot_address"`
	PlotAreaSqm *float64 `json:"plot_area_sqm"`
}

type PartiesSection struct {
	OwnerName           string `json:"owner_name"`
	ConsultantName      string `json:"consultant_name"`
	ConsultantLicenseNo string `json:"consultant_license_no"`
	ContractorName      string `json:"contractor_name"`
	ContractorLicenseNo string `json:"contractor_license_no"`
}

// LicenseSnapshot is the point-in-time copy of a building license stored on
// a contract. The license's own siteplan snapshot is carried through as-is.
type LicenseSnapshot struct {
	License  *LicenseSection   `json:"license,omitempty"`
	Land     *LandSection      `json:"land,omitempty"`
	Parties  *PartiesSection   `json:"parties,omitempty"`
	SitePlan *SitePlanSnapshot `json:"siteplan,omitempty"`
}

func (s LicenseSnapshot) IsEmpty() bool {
	return s.License == nil && s.Land == nil && s.Parties == nil && s.SitePlan == nil
}

func (s LicenseSnapshot) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *LicenseSnapshot) Scan(src interface{}) error {
	return scanJSON(src, s)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
