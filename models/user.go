package models

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is an account that can authenticate against the API
type User struct {
	ID             string    `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Email          string    `json:"email" db:"email" gorm:"column:email;type:text;not null;uniqueIndex"`
	Name           string    `json:"name" db:"name" gorm:"column:name;type:text;not null"`
	Role           string    `json:"role" db:"role" gorm:"column:role;type:text;not null"`
	HashedPassword string    `json:"-" db:"hashed_password" gorm:"column:hashed_password;type:text;not null"`
	CreatedAt      Timestamp `json:"created_at" db:"created_at" gorm:"column:created_at;not null"`
}

func (User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
