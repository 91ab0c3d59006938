package service

import (
	"context"

	"github.com/omran/construction-projects/internal/model"
)

type AwardingService struct {
	projects  ProjectRepository
	awardings AwardingRepository
}

func NewAwardingService(projects ProjectRepository, awardings AwardingRepository) *AwardingService {
	return &AwardingService{projects: projects, awardings: awardings}
}

type AwardingInput struct {
	AwardDate              *string `json:"award_date" form:"award_date"`
	ConsultantRegistration *string `json:"consultant_registration" form:"consultant_registration"`
	ContractorRegistration *string `json:"contractor_registration" form:"contractor_registration"`
	ProjectNumber          *string `json:"project_number" form:"project_number"`
	AwardFileID            *uint   `json:"award_file_id" form:"award_file_id"`
}

func (s *AwardingService) Create(ctx context.Context, projectID uint, input AwardingInput) (*model.Awarding, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}
	flags, err := s.projects.StageFlags(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if flags.HasAwarding {
		return nil, stageConflict(stageAwarding)
	}

	awarding := model.Awarding{ProjectID: projectID}
	applyAwardingInput(&awarding, input)

	if err := s.awardings.Create(ctx, &awarding); err != nil {
		return nil, mapStageCreateErr(err, stageAwarding)
	}
	return &awarding, nil
}

func (s *AwardingService) Get(ctx context.Context, projectID uint) (*model.Awarding, error) {
	awarding, err := s.awardings.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return awarding, nil
}

func (s *AwardingService) Update(ctx context.Context, projectID uint, input AwardingInput) (*model.Awarding, error) {
	awarding, err := s.awardings.GetByProject(ctx, projectID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	applyAwardingInput(awarding, input)
	if err := s.awardings.Save(ctx, awarding); err != nil {
		return nil, err
	}
	return awarding, nil
}

func (s *AwardingService) Delete(ctx context.Context, projectID uint) error {
	if _, err := s.awardings.GetByProject(ctx, projectID); err != nil {
		return mapNotFound(err)
	}
	return s.awardings.DeleteByProject(ctx, projectID)
}

func applyAwardingInput(awarding *model.Awarding, input AwardingInput) {
	if input.AwardDate != nil {
		awarding.AwardDate = parseDatePtr(*input.AwardDate)
	}
	if input.ConsultantRegistration != nil {
		awarding.ConsultantRegistration = *input.ConsultantRegistration
	}
	if input.ContractorRegistration != nil {
		awarding.ContractorRegistration = *input.ContractorRegistration
	}
	if input.ProjectNumber != nil {
		awarding.ProjectNumber = *input.ProjectNumber
	}
	if input.AwardFileID != nil {
		awarding.AwardFileID = input.AwardFileID
	}
}
