package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

type SRSDocumentRepo struct {
	db *gorm.DB
}

func NewSRSDocumentRepo(db *gorm.DB) *SRSDocumentRepo {
	return &SRSDocumentRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *SRSDocumentRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProject returns the SRS documents attached to a project
func (r *SRSDocumentRepo) FindByProject(ctx context.Context, projectID string) ([]*models.SRSDocument, error) {
	docs := []*models.SRSDocument{}
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Limit(ListLimit).Find(&docs).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "srs documents", err)
	}
	return docs, nil
}

// FindByID returns an SRS document by its ID
func (r *SRSDocumentRepo) FindByID(ctx context.Context, id string) (*models.SRSDocument, error) {
	var doc models.SRSDocument
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, lookupError("srs document", err)
	}
	return &doc, nil
}

// Add records an uploaded SRS document
func (r *SRSDocumentRepo) Add(ctx context.Context, doc *models.SRSDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Status == "" {
		doc.Status = models.SRSStatusPending
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return errs.NewDatabaseError("create", "srs document", err)
	}
	return nil
}

// UpdateStatus sets the review status of an SRS document
func (r *SRSDocumentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&models.SRSDocument{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return errs.NewDatabaseError("update", "srs document", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("srs document")
	}
	return nil
}

// Delete removes an SRS document record
func (r *SRSDocumentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SRSDocument{})
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "srs document", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("srs document")
	}
	return nil
}
