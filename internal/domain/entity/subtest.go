package entity

import (
	"time"
)

// Subtest is a themed block of questions within a package. Code is the
// subject code ("pu", "pk", ...) used by report and notification labels.
type Subtest struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	PackageID uint       `gorm:"not null;index" json:"package_id"`
	Code      string     `gorm:"size:20;not null" json:"code"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Questions []Question `gorm:"foreignKey:SubtestID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Subtest) TableName() string {
	return "subtests"
}
