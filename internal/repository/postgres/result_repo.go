package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
)

// ResultRepo implements repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// DeletePackageResults removes every stored output of a previous scoring run
// for the package. Runs on the caller's transaction so a rerun replaces the
// old rows atomically.
func (r *ResultRepo) DeletePackageResults(tx *gorm.DB, packageID uint) error {
	if err := tx.Where("package_id = ?", packageID).Delete(&entity.SubtestResult{}).Error; err != nil {
		return fmt.Errorf("failed to delete subtest results: %w", err)
	}
	if err := tx.Where("package_id = ?", packageID).Delete(&entity.LeaderboardEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete leaderboard entries: %w", err)
	}
	return nil
}

// SaveSubtestResults inserts the per-subtest rows of one scoring run.
func (r *ResultRepo) SaveSubtestResults(tx *gorm.DB, results []entity.SubtestResult) error {
	if len(results) == 0 {
		return nil
	}
	if err := tx.Create(&results).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("subtest results already stored for this run: %w", err)
		}
		return fmt.Errorf("failed to save subtest results: %w", err)
	}
	return nil
}

// SaveLeaderboard inserts the ranked leaderboard of one scoring run.
func (r *ResultRepo) SaveLeaderboard(tx *gorm.DB, entries []entity.LeaderboardEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := tx.Create(&entries).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("leaderboard already stored for this run: %w", err)
		}
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return nil
}

// GetLeaderboard returns the package leaderboard ordered by rank.
func (r *ResultRepo) GetLeaderboard(packageID uint) ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	err := r.db.Where("package_id = ?", packageID).
		Order("rank ASC").
		Find(&entries).Error
	return entries, err
}

// GetSubtestResults returns one subtest's result table ordered by score.
func (r *ResultRepo) GetSubtestResults(subtestID uint) ([]entity.SubtestResult, error) {
	var results []entity.SubtestResult
	err := r.db.Where("subtest_id = ?", subtestID).
		Order("score DESC, user_id ASC").
		Find(&results).Error
	return results, err
}

// GetUserPackageResults returns one user's rows across a package's subtests.
func (r *ResultRepo) GetUserPackageResults(packageID, userID uint) ([]entity.SubtestResult, error) {
	var results []entity.SubtestResult
	err := r.db.Where("package_id = ? AND user_id = ?", packageID, userID).
		Order("subtest_id ASC").
		Find(&results).Error
	return results, err
}

// isUniqueViolation checks Postgres unique violation (23505) for the pgconn
// and lib/pq drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
