package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusNotStarted  = "not_started"
	StatusDesigning   = "designing"
	StatusDevelopment = "development"
	StatusTesting     = "testing"
	StatusRevision    = "revision"
	StatusCompleted   = "completed"
)

// ActiveStatuses are the project statuses counted as work in progress.
var ActiveStatuses = []string{StatusDesigning, StatusDevelopment, StatusTesting, StatusRevision}

type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

// Project represents client work tracked by the agency
type Project struct {
	ID              string                         `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	ClientID        string                         `json:"client_id" db:"client_id" gorm:"column:client_id;type:text;not null;index"`
	Title           string                         `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Description     string                         `json:"description" db:"description" gorm:"column:description;type:text;not null"`
	StartDate       Timestamp                      `json:"start_date" db:"start_date" gorm:"column:start_date;not null"`
	Deadline        Timestamp                      `json:"deadline" db:"deadline" gorm:"column:deadline;not null"`
	Progress        int                            `json:"progress" db:"progress" gorm:"column:progress;not null;default:0"`
	Status          string                         `json:"status" db:"status" gorm:"column:status;type:text;not null;index"`
	TotalPrice      float64                        `json:"total_price" db:"total_price" gorm:"column:total_price;not null;default:0"`
	AmountPaid      float64                        `json:"amount_paid" db:"amount_paid" gorm:"column:amount_paid;not null;default:0"`
	GoogleSheetLink *string                        `json:"google_sheet_link" db:"google_sheet_link" gorm:"column:google_sheet_link;type:text"`
	ShareLink       string                         `json:"share_link" db:"share_link" gorm:"column:share_link;type:text;not null;uniqueIndex"`
	IsPortfolio     bool                           `json:"is_portfolio" db:"is_portfolio" gorm:"column:is_portfolio;not null;default:false;index"`
	Milestones      datatypes.JSONSlice[Milestone] `json:"milestones" db:"milestones" gorm:"column:milestones"`
	CreatedAt       Timestamp                      `json:"created_at" db:"created_at" gorm:"column:created_at;not null"`
}

func (Project) TableName() string {
	return "projects"
}

// PublicProject is a project as shown to share-link holders and portfolio visitors.
type PublicProject struct {
	ID              string      `json:"id"`
	ClientID        string      `json:"client_id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	StartDate       Timestamp   `json:"start_date"`
	Deadline        Timestamp   `json:"deadline"`
	Progress        int         `json:"progress"`
	Status          string      `json:"status"`
	TotalPrice      float64     `json:"total_price"`
	AmountPaid      float64     `json:"amount_paid"`
	GoogleSheetLink *string     `json:"google_sheet_link"`
	IsPortfolio     bool        `json:"is_portfolio"`
	Milestones      []Milestone `json:"milestones"`
	CreatedAt       Timestamp   `json:"created_at"`
}

// Public strips the share link.
func (p Project) Public() PublicProject {
	milestones := []Milestone(p.Milestones)
	if milestones == nil {
		milestones = []Milestone{}
	}
	return PublicProject{
		ID:              p.ID,
		ClientID:        p.ClientID,
		Title:           p.Title,
		Description:     p.Description,
		StartDate:       p.StartDate,
		Deadline:        p.Deadline,
		Progress:        p.Progress,
		Status:          p.Status,
		TotalPrice:      p.TotalPrice,
		AmountPaid:      p.AmountPaid,
		GoogleSheetLink: p.GoogleSheetLink,
		IsPortfolio:     p.IsPortfolio,
		Milestones:      milestones,
		CreatedAt:       p.CreatedAt,
	}
}

// ProjectInput is the payload accepted when creating a project
type ProjectInput struct {
	ClientID    string      `json:"client_id" validate:"required"`
	Title       string      `json:"title" validate:"required,max=300"`
	Description string      `json:"description"`
	StartDate   Timestamp   `json:"start_date" validate:"required"`
	Deadline    Timestamp   `json:"deadline" validate:"required"`
	TotalPrice  float64     `json:"total_price" validate:"gte=0"`
	IsPortfolio bool        `json:"is_portfolio"`
	Milestones  []Milestone `json:"milestones,omitempty" validate:"dive"`
}

func (in ProjectInput) Project() Project {
	return Project{
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		Deadline:    in.Deadline,
		Status:      StatusNotStarted,
		TotalPrice:  in.TotalPrice,
		IsPortfolio: in.IsPortfolio,
		Milestones:  datatypes.NewJSONSlice(withMilestoneIDs(in.Milestones)),
	}
}

// ProjectPatch holds the fields of a project update. Nil fields are left untouched;
// google_sheet_link is cleared by an explicit null.
// The share link is not patchable.
type ProjectPatch struct {
	Title           *string        `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Description     *string        `json:"description,omitempty"`
	StartDate       *Timestamp     `json:"start_date,omitempty"`
	Deadline        *Timestamp     `json:"deadline,omitempty"`
	Progress        *int           `json:"progress,omitempty"`
	Status          *string        `json:"status,omitempty"`
	TotalPrice      *float64       `json:"total_price,omitempty"`
	AmountPaid      *float64       `json:"amount_paid,omitempty"`
	GoogleSheetLink NullableString `json:"google_sheet_link"`
	IsPortfolio     *bool          `json:"is_portfolio,omitempty"`
	Milestones      *[]Milestone   `json:"milestones,omitempty" validate:"omitempty,dive"`
}

// Columns returns only the columns present in the patch.
func (p ProjectPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.StartDate != nil {
		cols["start_date"] = *p.StartDate
	}
	if p.Deadline != nil {
		cols["deadline"] = *p.Deadline
	}
	if p.Progress != nil {
		cols["progress"] = *p.Progress
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.TotalPrice != nil {
		cols["total_price"] = *p.TotalPrice
	}
	if p.AmountPaid != nil {
		cols["amount_paid"] = *p.AmountPaid
	}
	if p.GoogleSheetLink.Set {
		cols["google_sheet_link"] = p.GoogleSheetLink.column()
	}
	if p.IsPortfolio != nil {
		cols["is_portfolio"] = *p.IsPortfolio
	}
	if p.Milestones != nil {
		cols["milestones"] = datatypes.NewJSONSlice(withMilestoneIDs(*p.Milestones))
	}
	return cols
}

// withMilestoneIDs copies milestones, assigning ids to new entries.
func withMilestoneIDs(milestones []Milestone) []Milestone {
	out := make([]Milestone, len(milestones))
	for i, m := range milestones {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		out[i] = m
	}
	return out
}
