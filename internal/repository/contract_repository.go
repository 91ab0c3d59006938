package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *ContractRepository) GetByProject(ctx context.Context, projectID uint) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&contract).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) Save(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *ContractRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.Contract{}).Error
}
