package models

const SRSStatusPending = "pending"

// SRSDocument is a versioned software requirements specification attached to a project
type SRSDocument struct {
	ID          string    `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	ProjectID   string    `json:"project_id" db:"project_id" gorm:"column:project_id;type:text;not null;index"`
	Title       string    `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Version     string    `json:"version" db:"version" gorm:"column:version;type:text;not null"`
	FileURL     string    `json:"file_url" db:"file_url" gorm:"column:file_url;type:text;not null"`
	UploadedBy  string    `json:"uploaded_by" db:"uploaded_by" gorm:"column:uploaded_by;type:text;not null"`
	Description *string   `json:"description" db:"description" gorm:"column:description;type:text"`
	Status      string    `json:"status" db:"status" gorm:"column:status;type:text;not null"`
	CreatedAt   Timestamp `json:"created_at" db:"created_at" gorm:"column:created_at;not null"`
}

func (SRSDocument) TableName() string {
	return "srs_documents"
}
