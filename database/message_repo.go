package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *MessageRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProject returns a project's messages, oldest first
func (r *MessageRepo) FindByProject(ctx context.Context, projectID string) ([]*models.Message, error) {
	messages := []*models.Message{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Limit(ListLimit).
		Find(&messages).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "messages", err)
	}
	return messages, nil
}

// Add appends a message
func (r *MessageRepo) Add(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return errs.NewDatabaseError("create", "message", err)
	}
	return nil
}
