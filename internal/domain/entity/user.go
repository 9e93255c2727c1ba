package entity

import (
	"time"
)

// User is a portal account that answers tryout questions. Account management
// itself lives in the portal; the scoring engine only reads identity fields.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	Email     string    `gorm:"size:100;index" json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (User) TableName() string {
	return "users"
}
