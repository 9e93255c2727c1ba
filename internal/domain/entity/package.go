package entity

import (
	"time"
)

// Package is a top-level tryout product containing one or more subtests.
type Package struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	Subtests    []Subtest `gorm:"foreignKey:PackageID" json:"subtests,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Package) TableName() string {
	return "packages"
}
