package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns up to ListLimit projects
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).Order("created_at").Limit(ListLimit).Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindPortfolio returns up to ListLimit projects flagged for the public portfolio
func (r *ProjectRepo) FindPortfolio(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).Where("is_portfolio = ?", true).Order("created_at").Limit(ListLimit).Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "portfolio projects", err)
	}
	return projects, nil
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, lookupError("project", err)
	}
	return &project, nil
}

// FindByShareLink returns the project a share token was issued for
func (r *ProjectRepo) FindByShareLink(ctx context.Context, shareLink string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("share_link = ?", shareLink).First(&project).Error; err != nil {
		return nil, lookupError("project", err)
	}
	return &project, nil
}

// Add inserts a new project, issuing its share link
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.ShareLink == "" {
		project.ShareLink = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = models.StatusNotStarted
	}
	if project.Milestones == nil {
		project.Milestones = datatypes.NewJSONSlice([]models.Milestone{})
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = models.Now()
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update writes only the fields present in patch and returns the stored project.
// Concurrent updates are last-write-wins.
func (r *ProjectRepo) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, errs.NewDatabaseError("update", "project", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, errs.NewNotFound("project")
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes a project together with its messages, files and SRS documents.
// Children go first and everything shares one transaction.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{&models.Message{}, &models.FileUpload{}, &models.SRSDocument{}} {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NewNotFound("project")
		}
		return nil
	})
	if err == nil || errs.IsNotFound(err) {
		return err
	}
	return errs.NewTransactionFailedError("delete project", err)
}

func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "projects", err)
	}
	return n, nil
}

// CountByStatus counts projects whose status is any of statuses
func (r *ProjectRepo) CountByStatus(ctx context.Context, statuses ...string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("status IN ?", statuses).Count(&n).Error
	if err != nil {
		return 0, errs.NewDatabaseError("count", "projects", err)
	}
	return n, nil
}

// ProjectTotals are the summed prices and payments across all projects
type ProjectTotals struct {
	TotalPrice float64
	AmountPaid float64
}

// Totals sums total_price and amount_paid over every project
func (r *ProjectRepo) Totals(ctx context.Context) (ProjectTotals, error) {
	var totals ProjectTotals
	err := r.db.WithContext(ctx).Model(&models.Project{}).
		Select("COALESCE(SUM(total_price), 0) AS total_price, COALESCE(SUM(amount_paid), 0) AS amount_paid").
		Scan(&totals).Error
	if err != nil {
		return ProjectTotals{}, errs.NewDatabaseError("sum", "projects", err)
	}
	return totals, nil
}
