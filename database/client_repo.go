package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

type ClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ClientRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns up to ListLimit clients
func (r *ClientRepo) FindAll(ctx context.Context) ([]*models.Client, error) {
	clients := []*models.Client{}
	err := r.db.WithContext(ctx).Order("created_at").Limit(ListLimit).Find(&clients).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "clients", err)
	}
	return clients, nil
}

// FindByID returns a client by its ID
func (r *ClientRepo) FindByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, lookupError("client", err)
	}
	return &client, nil
}

// Add inserts a new client into the database
func (r *ClientRepo) Add(ctx context.Context, client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return errs.NewDatabaseError("create", "client", err)
	}
	return nil
}

// Update writes only the fields present in patch and returns the stored client
func (r *ClientRepo) Update(ctx context.Context, id string, patch models.ClientPatch) (*models.Client, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, errs.NewDatabaseError("update", "client", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, errs.NewNotFound("client")
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a client from the database by id. Projects referencing it are kept.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{})
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "client", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("client")
	}
	return nil
}

func (r *ClientRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&n).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "clients", err)
	}
	return n, nil
}
