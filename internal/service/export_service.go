package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type SummaryPDFGenerator interface {
	Generate(summary model.ProjectSummary) ([]byte, error)
}

type RegisterExcelGenerator interface {
	Generate(register model.ProjectRegister) ([]byte, error)
}

// ExportService assembles register and summary documents from the current
// record state.
type ExportService struct {
	projects  ProjectRepository
	plans     SitePlanRepository
	licenses  LicenseRepository
	contracts ContractRepository
	awardings AwardingRepository
	pdf       SummaryPDFGenerator
	excel     RegisterExcelGenerator
}

func NewExportService(
	projects ProjectRepository,
	plans SitePlanRepository,
	licenses LicenseRepository,
	contracts ContractRepository,
	awardings AwardingRepository,
	pdf SummaryPDFGenerator,
	excel RegisterExcelGenerator,
) *ExportService {
	return &ExportService{
		projects:  projects,
		plans:     plans,
		licenses:  licenses,
		contracts: contracts,
		awardings: awardings,
		pdf:       pdf,
		excel:     excel,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ExportService) ProjectSummaryPDF(ctx context.Context, projectID uint) (*ExportResult, error) {
	summary, err := s.assembleSummary(ctx, projectID)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*summary)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("project-%d-summary.pdf", projectID),
		Content:  content,
	}, nil
}

func (s *ExportService) ProjectsExcel(ctx context.Context) (*ExportResult, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	register := model.ProjectRegister{GeneratedAt: time.Now().UTC()}
	for i := range projects {
		project := &projects[i]
		flags, err := s.projects.StageFlags(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		row := model.RegisterRow{
			Project: model.ProjectView{
				Project:     *project,
				HasSitePlan: flags.HasSitePlan,
				HasLicense:  flags.HasLicense,
				HasContract: flags.HasContract,
				HasAwarding: flags.HasAwarding,
				Completion:  Completion(project.ID, flags.HasSitePlan, flags.HasLicense, flags.HasContract),
			},
		}

		if flags.HasSitePlan {
			if plan, err := s.plans.GetByProject(ctx, project.ID); err == nil {
				owners, err := s.plans.ListOwners(ctx, plan.ID)
				if err != nil {
					return nil, err
				}
				row.OwnerCount = len(owners)
				for _, owner := range owners {
					register.Owners = append(register.Owners, model.RegisterOwnerRow{
						ProjectID:     project.ID,
						ProjectName:   project.DisplayName,
						OwnerNameAR:   owner.OwnerNameAR,
						OwnerNameEN:   owner.OwnerNameEN,
						Nationality:   owner.Nationality,
						RightHoldType: owner.RightHoldType,
						SharePercent:  owner.SharePercent,
					})
				}
			}
		}
		if flags.HasLicense {
			if license, err := s.licenses.GetByProject(ctx, project.ID); err == nil {
				row.LicenseNo = license.LicenseNo
			}
		}
		if flags.HasContract {
			if contract, err := s.contracts.GetByProject(ctx, project.ID); err == nil {
				row.ContractorName = contract.ContractorName
				row.ProjectValue = contract.ProjectValue
			}
		}

		register.Rows = append(register.Rows, row)
	}

	content, err := s.excel.Generate(register)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("projects-%s.xlsx", register.GeneratedAt.Format("20060102")),
		Content:  content,
	}, nil
}

func (s *ExportService) assembleSummary(ctx context.Context, projectID uint) (*model.ProjectSummary, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	flags, err := s.projects.StageFlags(ctx, projectID)
	if err != nil {
		return nil, err
	}

	summary := model.ProjectSummary{
		Project: model.ProjectView{
			Project:     *project,
			HasSitePlan: flags.HasSitePlan,
			HasLicense:  flags.HasLicense,
			HasContract: flags.HasContract,
			HasAwarding: flags.HasAwarding,
			Completion:  Completion(project.ID, flags.HasSitePlan, flags.HasLicense, flags.HasContract),
		},
	}

	if plan, err := s.plans.GetByProject(ctx, projectID); err == nil {
		summary.SitePlan = plan
		owners, err := s.plans.ListOwners(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		summary.Owners = owners
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if license, err := s.licenses.GetByProject(ctx, projectID); err == nil {
		summary.License = license
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if contract, err := s.contracts.GetByProject(ctx, projectID); err == nil {
		summary.Contract = contract
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if awarding, err := s.awardings.GetByProject(ctx, projectID); err == nil {
		summary.Awarding = awarding
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &summary, nil
}
