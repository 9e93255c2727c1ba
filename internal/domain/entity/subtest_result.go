package entity

import (
	"time"
)

// SubtestResult is one user's computed result for one subtest. Breakdown has
// one slot per question in declaration order: "1" correct, "0" incorrect, ""
// when no answer was recorded.
type SubtestResult struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	PackageID      uint        `gorm:"not null;index" json:"package_id"`
	SubtestID      uint        `gorm:"not null;index;uniqueIndex:idx_subtest_user" json:"subtest_id"`
	UserID         uint        `gorm:"not null;uniqueIndex:idx_subtest_user" json:"user_id"`
	Username       string      `gorm:"size:50;not null" json:"username"`
	CorrectCount   int         `gorm:"not null;default:0" json:"correct_count"`
	IncorrectCount int         `gorm:"not null;default:0" json:"incorrect_count"`
	Score          float64     `gorm:"not null;default:0" json:"score"`
	Breakdown      StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"breakdown"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// TableName defines the table name for GORM
func (SubtestResult) TableName() string {
	return "subtest_results"
}
