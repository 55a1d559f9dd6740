package models

const BookingStatusPending = "pending"

// Booking is a public intake request submitted through the booking form
type Booking struct {
	ID          string    `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"column:name;type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"column:email;type:text;not null"`
	Phone       *string   `json:"phone" db:"phone" gorm:"column:phone;type:text"`
	ProjectIdea string    `json:"project_idea" db:"project_idea" gorm:"column:project_idea;type:text;not null"`
	BudgetRange *string   `json:"budget_range" db:"budget_range" gorm:"column:budget_range;type:text"`
	Deadline    *string   `json:"deadline" db:"deadline" gorm:"column:deadline;type:text"`
	WebsiteType *string   `json:"website_type" db:"website_type" gorm:"column:website_type;type:text"`
	Status      string    `json:"status" db:"status" gorm:"column:status;type:text;not null;index"`
	CreatedAt   Timestamp `json:"created_at" db:"created_at" gorm:"column:created_at;not null;index"`
}

func (Booking) TableName() string {
	return "bookings"
}

type BookingInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	ProjectIdea string  `json:"project_idea" validate:"required,max=10000"`
	BudgetRange *string `json:"budget_range,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	WebsiteType *string `json:"website_type,omitempty"`
}

// Booking builds a new booking; intake always starts as pending.
func (in BookingInput) Booking() Booking {
	return Booking{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ProjectIdea: in.ProjectIdea,
		BudgetRange: in.BudgetRange,
		Deadline:    in.Deadline,
		WebsiteType: in.WebsiteType,
		Status:      BookingStatusPending,
	}
}
