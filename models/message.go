package models

// Message is an append-only note on a project. Sender fields are snapshots taken at send time.
type Message struct {
	ID         string    `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	ProjectID  string    `json:"project_id" db:"project_id" gorm:"column:project_id;type:text;not null;index"`
	SenderName string    `json:"sender_name" db:"sender_name" gorm:"column:sender_name;type:text;not null"`
	SenderRole string    `json:"sender_role" db:"sender_role" gorm:"column:sender_role;type:text;not null"`
	Message    string    `json:"message" db:"message" gorm:"column:message;type:text;not null"`
	CreatedAt  Timestamp `json:"created_at" db:"created_at" gorm:"column:created_at;not null;index"`
}

func (Message) TableName() string {
	return "messages"
}

type MessageInput struct {
	ProjectID string `json:"project_id" validate:"required"`
	Message   string `json:"message" validate:"required,max=10000"`
}
