package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
	"github.com/yourusername/tryout-api/internal/domain/repository"
	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
	"github.com/yourusername/tryout-api/internal/service/scoring"
	ws "github.com/yourusername/tryout-api/internal/websocket"
)

// leaderboardCacheTTL bounds how stale a cached leaderboard can get if the
// cache outlives a manual DB edit. Scoring runs invalidate it explicitly.
const leaderboardCacheTTL = time.Hour

// ScoringService runs the scoring pipeline for a package and persists its
// output.
type ScoringService struct {
	packageRepo repository.PackageRepository
	resultRepo  repository.ResultRepository
	cacheRepo   repository.CacheRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

// NewScoringService creates a new scoring service. wsHub may be nil when no
// push channel is wired (the batch runner).
func NewScoringService(
	packageRepo repository.PackageRepository,
	resultRepo repository.ResultRepository,
	cacheRepo repository.CacheRepository,
	db *gorm.DB,
	wsHub *ws.Hub,
) *ScoringService {
	return &ScoringService{
		packageRepo: packageRepo,
		resultRepo:  resultRepo,
		cacheRepo:   cacheRepo,
		db:          db,
		wsHub:       wsHub,
	}
}

// ScorePackage loads the package snapshot, runs the full pipeline and stores
// both per-subtest tables and the ranked leaderboard in one transaction.
// A rerun replaces the previous output atomically; on any error nothing is
// written and no partial result is ever merged.
func (s *ScoringService) ScorePackage(ctx context.Context, packageID uint) (*scoring.PackageResult, error) {
	pkg, err := s.packageRepo.GetWithSubtests(packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load package #%d: %w", packageID, err)
	}

	snapshot, err := buildSnapshot(pkg)
	if err != nil {
		return nil, err
	}

	result := scoring.ScorePackage(snapshot)
	if len(result.Subtests) == 0 {
		return nil, fmt.Errorf("package #%d: %w", packageID, apperrors.ErrEmptyPackage)
	}

	subtestRows, leaderboardRows := buildResultRows(packageID, result)

	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			log.Printf("PANIC recovered during ScorePackage transaction for package %d: %v", packageID, r)
		}
	}()
	if tx.Error != nil {
		log.Printf("[ScoringService] Error starting transaction for package #%d: %v", packageID, tx.Error)
		return nil, tx.Error
	}

	if err := s.resultRepo.DeletePackageResults(tx, packageID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear previous results: %w", err)
	}
	if err := s.resultRepo.SaveSubtestResults(tx, subtestRows); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := s.resultRepo.SaveLeaderboard(tx, leaderboardRows); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[ScoringService] Error committing transaction for package #%d: %v", packageID, err)
		return nil, fmt.Errorf("failed to store scoring results: %w", err)
	}

	s.refreshLeaderboardCache(packageID, leaderboardRows)
	s.sendLeaderboardReadyNotification(packageID)

	log.Printf("[ScoringService] Package #%d scored: %d subtests, %d users ranked",
		packageID, len(result.Subtests), len(result.Leaderboard))
	return result, nil
}

// GetLeaderboard serves the stored leaderboard, preferring the cache and
// re-warming it on a miss.
func (s *ScoringService) GetLeaderboard(packageID uint) ([]entity.LeaderboardEntry, error) {
	var cached []entity.LeaderboardEntry
	if err := s.cacheRepo.GetJSON(leaderboardCacheKey(packageID), &cached); err == nil {
		return cached, nil
	}

	entries, err := s.resultRepo.GetLeaderboard(packageID)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		s.refreshLeaderboardCache(packageID, entries)
	}
	return entries, nil
}

// GetSubtestResults returns one subtest's stored result table.
func (s *ScoringService) GetSubtestResults(subtestID uint) ([]entity.SubtestResult, error) {
	return s.resultRepo.GetSubtestResults(subtestID)
}

func (s *ScoringService) refreshLeaderboardCache(packageID uint, entries []entity.LeaderboardEntry) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.SetJSON(leaderboardCacheKey(packageID), entries, leaderboardCacheTTL); err != nil {
		// Cache trouble never fails a scoring run.
		log.Printf("[ScoringService] Failed to cache leaderboard for package #%d: %v", packageID, err)
	}
}

func (s *ScoringService) sendLeaderboardReadyNotification(packageID uint) {
	if s.wsHub == nil {
		return
	}
	event := map[string]interface{}{"package_id": packageID}
	if err := s.wsHub.BroadcastEvent("package:leaderboard_ready", event); err != nil {
		log.Printf("[ScoringService] Failed to broadcast leaderboard_ready for package #%d: %v", packageID, err)
	}
}

func leaderboardCacheKey(packageID uint) string {
	return fmt.Sprintf("package:%d:leaderboard", packageID)
}

// buildSnapshot converts the loaded entity graph into the immutable input of
// the scoring pipeline. An answer referencing a user that does not exist is
// an upstream defect and fails the whole run.
func buildSnapshot(pkg *entity.Package) (*scoring.Package, error) {
	snapshot := &scoring.Package{
		ID:       pkg.ID,
		Subtests: make([]scoring.Subtest, 0, len(pkg.Subtests)),
	}
	for _, st := range pkg.Subtests {
		subtest := scoring.Subtest{
			ID:        st.ID,
			Code:      st.Code,
			Questions: make([]scoring.Question, 0, len(st.Questions)),
		}
		for _, q := range st.Questions {
			question := scoring.Question{
				ID:               q.ID,
				CorrectChoiceID:  q.CorrectChoiceID,
				ReferenceAnswers: q.ReferenceAnswers,
				Answers:          make([]scoring.Answer, 0, len(q.Answers)),
			}
			for _, a := range q.Answers {
				if a.User.ID == 0 {
					return nil, fmt.Errorf("answer #%d (question #%d): %w", a.ID, q.ID, apperrors.ErrUnknownUser)
				}
				question.Answers = append(question.Answers, scoring.Answer{
					UserID:   a.UserID,
					Username: a.User.Username,
					Email:    a.User.Email,
					ChoiceID: a.ChoiceID,
					FreeText: a.FreeText,
				})
			}
			subtest.Questions = append(subtest.Questions, question)
		}
		snapshot.Subtests = append(snapshot.Subtests, subtest)
	}
	return snapshot, nil
}

// buildResultRows converts pipeline output into persistable entities. Rank is
// 1-based in leaderboard order.
func buildResultRows(packageID uint, result *scoring.PackageResult) ([]entity.SubtestResult, []entity.LeaderboardEntry) {
	var subtestRows []entity.SubtestResult
	for _, table := range result.Subtests {
		for _, row := range table.Rows {
			subtestRows = append(subtestRows, entity.SubtestResult{
				PackageID:      packageID,
				SubtestID:      table.SubtestID,
				UserID:         row.UserID,
				Username:       row.Username,
				CorrectCount:   row.Correct,
				IncorrectCount: row.Incorrect,
				Score:          row.Score,
				Breakdown:      entity.StringArray(row.Breakdown),
			})
		}
	}

	leaderboardRows := make([]entity.LeaderboardEntry, 0, len(result.Leaderboard))
	for i, e := range result.Leaderboard {
		leaderboardRows = append(leaderboardRows, entity.LeaderboardEntry{
			PackageID:    packageID,
			UserID:       e.UserID,
			Username:     e.Username,
			TotalScore:   e.TotalScore,
			SubtestCount: e.SubtestCount,
			AverageScore: e.AverageScore,
			Rank:         i + 1,
		})
	}
	return subtestRows, leaderboardRows
}
