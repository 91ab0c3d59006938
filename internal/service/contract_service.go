package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type ContractService struct {
	projects  ProjectRepository
	licenses  LicenseRepository
	contracts ContractRepository
	files     FileStore
}

func NewContractService(projects ProjectRepository, licenses LicenseRepository, contracts ContractRepository, files FileStore) *ContractService {
	return &ContractService{projects: projects, licenses: licenses, contracts: contracts, files: files}
}

// FeeBlockInput mirrors one fee-structure block of a contract.
type FeeBlockInput struct {
	Include            *bool    `json:"include"`
	DesignPercent      *float64 `json:"design_percent"`
	SupervisionPercent *float64 `json:"supervision_percent"`
	ExtraFeeMode       *string  `json:"extra_fee_mode"`
	ExtraFeeValue      *float64 `json:"extra_fee_value"`
}

type ContractInput struct {
	Classification *string `json:"classification" form:"classification"`
	ContractType   *string `json:"contract_type" form:"contract_type"`
	TenderNo       *string `json:"tender_no" form:"tender_no"`
	ContractDate   *string `json:"contract_date" form:"contract_date"`

	ContractorName      *string `json:"contractor_name" form:"contractor_name"`
	ContractorLicenseNo *string `json:"contractor_license_no" form:"contractor_license_no"`

	ProjectValue   *float64 `json:"project_value" form:"project_value"`
	BankValue      *float64 `json:"bank_value" form:"bank_value"`
	OwnerValue     *float64 `json:"owner_value" form:"owner_value"`
	DurationMonths *int     `json:"duration_months" form:"duration_months"`

	OwnerFees *FeeBlockInput `json:"owner_fees"`
	BankFees  *FeeBlockInput `json:"bank_fees"`

	ContractFileID    *uint `json:"contract_file_id" form:"contract_file_id"`
	AppendixFileID    *uint `json:"appendix_file_id" form:"appendix_file_id"`
	ExplanationFileID *uint `json:"explanation_file_id" form:"explanation_file_id"`
	StartOrderFileID  *uint `json:"start_order_file_id" form:"start_order_file_id"`
}

func (s *ContractService) Create(ctx context.Context, projectID uint, input ContractInput) (*model.Contract, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	flags, err := s.projects.StageFlags(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if flags.HasContract {
		return nil, stageConflict(stageContract)
	}

	contract := model.Contract{ProjectID: projectID}
	if err := applyContractInput(&contract, input); err != nil {
		return nil, err
	}

	// Snapshot the building license exactly once, at creation.
	license, err := s.licenses.GetByProject(ctx, projectID)
	switch {
	case err == nil:
		contract.LicenseSnapshot = BuildLicenseSnapshot(license, s.resolver(ctx))
	case errors.Is(err, gorm.ErrRecordNotFound):
		contract.LicenseSnapshot = model.LicenseSnapshot{}
	default:
		return nil, err
	}

	if err := s.contracts.Create(ctx, &contract); err != nil {
		return nil, mapStageCreateErr(err, stageContract)
	}
	return &contract, nil
}

func (s *ContractService) Get(ctx context.Context, projectID uint) (*model.Contract, error) {
	contract, err := s.contracts.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return contract, nil
}

func (s *ContractService) Update(ctx context.Context, projectID uint, input ContractInput) (*model.Contract, error) {
	contract, err := s.contracts.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := applyContractInput(contract, input); err != nil {
		return nil, err
	}
	if err := s.contracts.Save(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) Delete(ctx context.Context, projectID uint) error {
	if _, err := s.contracts.GetByProject(ctx, projectID); err != nil {
		return mapNotFound(err)
	}
	return s.contracts.DeleteByProject(ctx, projectID)
}

func (s *ContractService) resolver(ctx context.Context) FileResolver {
	return func(fileID *uint) *string {
		if fileID == nil || s.files == nil {
			return nil
		}
		return s.files.URLFor(ctx, *fileID)
	}
}

func applyContractInput(contract *model.Contract, input ContractInput) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&contract.Classification, input.Classification)
	setString(&contract.ContractType, input.ContractType)
	setString(&contract.TenderNo, input.TenderNo)
	setString(&contract.ContractorName, input.ContractorName)
	setString(&contract.ContractorLicenseNo, input.ContractorLicenseNo)

	if input.ContractDate != nil {
		contract.ContractDate = parseDatePtr(*input.ContractDate)
	}
	if input.ProjectValue != nil {
		if *input.ProjectValue <= 0 {
			return fieldErr("project_value", "must be positive")
		}
		contract.ProjectValue = input.ProjectValue
	}
	if input.BankValue != nil {
		if *input.BankValue < 0 {
			return fieldErr("bank_value", "must not be negative")
		}
		contract.BankValue = input.BankValue
	}
	if input.OwnerValue != nil {
		contract.OwnerValue = input.OwnerValue
	}
	if input.DurationMonths != nil {
		contract.DurationMonths = input.DurationMonths
	}

	if err := applyFeeBlock(&contract.OwnerFees, input.OwnerFees, "owner_fees"); err != nil {
		return err
	}
	if err := applyFeeBlock(&contract.BankFees, input.BankFees, "bank_fees"); err != nil {
		return err
	}

	if input.ContractFileID != nil {
		contract.ContractFileID = input.ContractFileID
	}
	if input.AppendixFileID != nil {
		contract.AppendixFileID = input.AppendixFileID
	}
	if input.ExplanationFileID != nil {
		contract.ExplanationFileID = input.ExplanationFileID
	}
	if input.StartOrderFileID != nil {
		contract.StartOrderFileID = input.StartOrderFileID
	}
	return nil
}

func applyFeeBlock(block *model.FeeBlock, input *FeeBlockInput, field string) error {
	if input == nil {
		return nil
	}
	if input.Include != nil {
		block.Include = *input.Include
	}
	if input.DesignPercent != nil {
		block.DesignPercent = input.DesignPercent
	}
	if input.SupervisionPercent != nil {
		block.SupervisionPercent = input.SupervisionPercent
	}
	if input.ExtraFeeMode != nil {
		switch mode := model.ExtraFeeMode(*input.ExtraFeeMode); mode {
		case model.ExtraFeeModeFixed, model.ExtraFeeModePercent, model.ExtraFeeModeNone:
			block.ExtraFeeMode = mode
		default:
			return fieldErr(field+".extra_fee_mode", "must be fixed, percent, or none")
		}
	}
	if input.ExtraFeeValue != nil {
		block.ExtraFeeValue = input.ExtraFeeValue
	}
	return nil
}
