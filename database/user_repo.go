package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *UserRepo) GetDB() *gorm.DB {
	return r.db
}

// Add inserts a new user. A duplicate email fails with an already-exists error.
func (r *UserRepo) Add(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return errs.NewDatabaseError("create", "user", err)
	}
	return nil
}

// FindByID returns a user by its ID
func (r *UserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, lookupError("user", err)
	}
	return &user, nil
}

// FindByEmail returns a user by email
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, lookupError("user", err)
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("hashed_password", hashedPassword)
	if res.Error != nil {
		return errs.NewDatabaseError("update", "user", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFound("user")
	}
	return nil
}
