package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

type FileRepo struct {
	db *gorm.DB
}

func NewFileRepo(db *gorm.DB) *FileRepo {
	return &FileRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *FileRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProject returns the files uploaded to a project
func (r *FileRepo) FindByProject(ctx context.Context, projectID string) ([]*models.FileUpload, error) {
	files := []*models.FileUpload{}
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Limit(ListLimit).Find(&files).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "files", err)
	}
	return files, nil
}

// Add records an uploaded file
func (r *FileRepo) Add(ctx context.Context, file *models.FileUpload) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	if file.Category == "" {
		file.Category = models.DefaultFileCategory
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return errs.NewDatabaseError("create", "file", err)
	}
	return nil
}

// Delete removes a file record. The stored object is left in the blob store.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FileUpload{})
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "file", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("file")
	}
	return nil
}
