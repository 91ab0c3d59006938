package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/omran/construction-projects/internal/model"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *model.FileUpload) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *FileRepository) Get(ctx context.Context, id uint) (*model.FileUpload, error) {
	var file model.FileUpload
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}
