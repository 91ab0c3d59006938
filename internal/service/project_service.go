package service

import (
	"context"
	"fmt"

	"github.com/omran/construction-projects/internal/model"
)

type ProjectService struct {
	projects ProjectRepository
}

func NewProjectService(projects ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// ProjectInput carries a create or partial-update request. Nil fields are
// left untouched on update.
type ProjectInput struct {
	Name         *string `json:"name" form:"name"`
	Type         *string `json:"type" form:"type"`
	Category     *string `json:"category" form:"category"`
	ContractType *string `json:"contract_type" form:"contract_type"`
	Status       *string `json:"status" form:"status"`
	InternalCode *string `json:"internal_code" form:"internal_code"`
}

func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*model.ProjectView, error) {
	project := model.Project{
		Type:   model.ProjectTypeResidential,
		Status: model.ProjectStatusDraft,
	}
	if err := applyProjectInput(&project, input); err != nil {
		return nil, err
	}

	if err := s.projects.Create(ctx, &project); err != nil {
		return nil, err
	}

	// A fresh project has no owners yet; the display name starts as the
	// synthetic fallback and is re-derived when a site plan arrives.
	project.DisplayName = fallbackDisplayName(project.ID)
	if err := s.projects.SetDisplayName(ctx, project.ID, project.DisplayName); err != nil {
		return nil, err
	}

	return &model.ProjectView{Project: project, Completion: 0}, nil
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*model.ProjectView, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s.view(ctx, project)
}

func (s *ProjectService) List(ctx context.Context) ([]model.ProjectView, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.ProjectView, 0, len(projects))
	for i := range projects {
		view, err := s.view(ctx, &projects[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *ProjectService) Update(ctx context.Context, id uint, input ProjectInput) (*model.ProjectView, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := applyProjectInput(project, input); err != nil {
		return nil, err
	}
	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return s.view(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.projects.Get(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.projects.Delete(ctx, id)
}

func (s *ProjectService) view(ctx context.Context, project *model.Project) (*model.ProjectView, error) {
	flags, err := s.projects.StageFlags(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	return &model.ProjectView{
		Project:     *project,
		HasSitePlan: flags.HasSitePlan,
		HasLicense:  flags.HasLicense,
		HasContract: flags.HasContract,
		HasAwarding: flags.HasAwarding,
		Completion:  Completion(project.ID, flags.HasSitePlan, flags.HasLicense, flags.HasContract),
	}, nil
}

func applyProjectInput(project *model.Project, input ProjectInput) error {
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Type != nil {
		switch t := model.ProjectType(*input.Type); t {
		case model.ProjectTypeResidential, model.ProjectTypeCommercial, model.ProjectTypeMixed:
			project.Type = t
		default:
			return fieldErr("type", fmt.Sprintf("unknown project type %q", *input.Type))
		}
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.ContractType != nil {
		project.ContractType = *input.ContractType
	}
	if input.Status != nil {
		switch st := model.ProjectStatus(*input.Status); st {
		case model.ProjectStatusDraft, model.ProjectStatusInProgress, model.ProjectStatusCompleted:
			project.Status = st
		default:
			return fieldErr("status", fmt.Sprintf("unknown project status %q", *input.Status))
		}
	}
	if input.InternalCode != nil {
		normalized, err := NormalizeInternalCode(*input.InternalCode)
		if err != nil {
			return err
		}
		project.InternalCode = normalized
	}
	return nil
}
