package repository

import (
	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
)

// ResultRepository persists and serves computed scoring outputs. The Save and
// Delete methods run on a caller-supplied transaction so one scoring run
// commits atomically: either every subtest table and the leaderboard land, or
// nothing does.
type ResultRepository interface {
	DeletePackageResults(tx *gorm.DB, packageID uint) error
	SaveSubtestResults(tx *gorm.DB, results []entity.SubtestResult) error
	SaveLeaderboard(tx *gorm.DB, entries []entity.LeaderboardEntry) error

	GetLeaderboard(packageID uint) ([]entity.LeaderboardEntry, error)
	GetSubtestResults(subtestID uint) ([]entity.SubtestResult, error)
	GetUserPackageResults(packageID, userID uint) ([]entity.SubtestResult, error)
}
