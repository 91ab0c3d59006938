package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type ExtraFeeMode string

const (
	ExtraFeeModeFixed   ExtraFeeMode = "fixed"
	ExtraFeeModePercent ExtraFeeMode = "percent"
	ExtraFeeModeNone    ExtraFeeMode = "none"
)

// FeeBlock is one side (owner or bank) of a contract's fee structure.
type FeeBlock struct {
	Include            bool         `json:"include"`
	DesignPercent      *float64     `json:"design_percent"`
	SupervisionPercent *float64     `json:"supervision_percent"`
	ExtraFeeMode       ExtraFeeMode `json:"extra_fee_mode"`
	ExtraFeeValue      *float64     `json:"extra_fee_value"`
}

func (b FeeBlock) Value() (driver.Value, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (b *FeeBlock) Scan(src interface{}) error {
	return scanJSON(src, b)
}

type Contract struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"column:project_id;uniqueIndex" json:"project_id"`

	Classification string     `gorm:"column:classification" json:"classification"`
	ContractType   string     `gorm:"column:contract_type" json:"contract_type"`
	TenderNo       string     `gorm:"column:tender_no" json:"tender_no"`
	ContractDate   *time.Time `gorm:"column:contract_date" json:"contract_date"`

	ContractorName      string `gorm:"column:contractor_name" json:"contractor_name"`
	ContractorLicenseNo string `gorm:"column:contractor_license_no" json:"contractor_license_no"`

	ProjectValue   *float64 `gorm:"column:project_value" json:"project_value"`
	BankValue      *float64 `gorm:"column:bank_value" json:"bank_value"`
	OwnerValue     *float64 `gorm:"column:owner_value" json:"owner_value"`
	DurationMonths *int     `gorm:"column:duration_months" json:"duration_months"`

	OwnerFees FeeBlock `gorm:"column:owner_fees;type:jsonb" json:"owner_fees"`
	BankFees  FeeBlock `gorm:"column:bank_fees;type:jsonb" json:"bank_fees"`

	// LicenseSnapshot is written once when the contract is created from the
	// project's building license, if any.
	LicenseSnapshot LicenseSnapshot `gorm:"column:license_snapshot;type:jsonb" json:"license_snapshot"`

	ContractFileID    *uint `gorm:"column:contract_file_id" json:"contract_file_id"`
	AppendixFileID    *uint `gorm:"column:appendix_file_id" json:"appendix_file_id"`
	ExplanationFileID *uint `gorm:"column:explanation_file_id" json:"explanation_file_id"`
	StartOrderFileID  *uint `gorm:"column:start_order_file_id" json:"start_order_file_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contract) TableName() string { return "contracts" }

type Awarding struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProjectID uint `gorm:"column:project_id;uniqueIndex" json:"project_id"`

	AwardDate              *time.Time `gorm:"column:award_date" json:"award_date"`
	ConsultantRegistration string     `gorm:"column:consultant_registration" json:"consultant_registration"`
	ContractorRegistration string     `gorm:"column:contractor_registration" json:"contractor_registration"`
	ProjectNumber          string     `gorm:"column:project_number" json:"project_number"`

	AwardFileID *uint `gorm:"column:award_file_id" json:"award_file_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Awarding) TableName() string { return "awardings" }
