package models

const (
	DefaultFileCategory = "general"
	// UnknownFileType is recorded when the upload carries no content type
	UnknownFileType = "unknown"
)

type FileUpload struct {
	ID          string    `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	ProjectID   string    `json:"project_id" db:"project_id" gorm:"column:project_id;type:text;not null;index"`
	Filename    string    `json:"filename" db:"filename" gorm:"column:filename;type:text;not null"`
	FileURL     string    `json:"file_url" db:"file_url" gorm:"column:file_url;type:text;not null"`
	FileType    string    `json:"file_type" db:"file_type" gorm:"column:file_type;type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"column:category;type:text;not null"`
	Description *string   `json:"description" db:"description" gorm:"column:description;type:text"`
	UploadedBy  string    `json:"uploaded_by" db:"uploaded_by" gorm:"column:uploaded_by;type:text;not null"`
	CreatedAt   Timestamp `json:"created_at" db:"created_at" gorm:"column:created_at;not null"`
}

func (FileUpload) TableName() string {
	return "files"
}
