package entity

import (
	"time"
)

// LeaderboardEntry is one user's package-wide ranking row. Rank is 1-based
// in the order produced by the scoring pipeline (average score descending,
// ties broken by ascending user ID).
type LeaderboardEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PackageID    uint      `gorm:"not null;index;uniqueIndex:idx_package_user" json:"package_id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_package_user" json:"user_id"`
	Username     string    `gorm:"size:50;not null" json:"username"`
	TotalScore   float64   `gorm:"not null;default:0" json:"total_score"`
	SubtestCount int       `gorm:"not null;default:0" json:"subtest_count"`
	AverageScore float64   `gorm:"not null;default:0" json:"average_score"`
	Rank         int       `gorm:"not null;default:0;index:idx_package_rank" json:"rank"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName defines the table name for GORM
func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}
