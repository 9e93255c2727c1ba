package dto

import (
	"fmt"

	"github.com/yourusername/tryout-api/internal/domain/entity"
)

// PackageResponse is a package in list/detail responses.
type PackageResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewPackageResponse converts a package entity into its response form.
func NewPackageResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:          pkg.ID,
		Title:       pkg.Title,
		Description: pkg.Description,
	}
}

// LeaderboardEntryResponse is one ranking row. Score fields are two-decimal
// strings; full precision stays server-side.
type LeaderboardEntryResponse struct {
	Rank         int    `json:"rank"`
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	SubtestCount int    `json:"subtest_count"`
	TotalScore   string `json:"total_score"`
	AverageScore string `json:"average_score"`
}

// NewLeaderboardResponse converts leaderboard entities into response rows.
func NewLeaderboardResponse(entries []entity.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Rank:         e.Rank,
			UserID:       e.UserID,
			Username:     e.Username,
			SubtestCount: e.SubtestCount,
			TotalScore:   fmt.Sprintf("%.2f", e.TotalScore),
			AverageScore: fmt.Sprintf("%.2f", e.AverageScore),
		})
	}
	return out
}

// SubtestResultResponse is one user's row in a subtest result table.
// Breakdown slots are "1", "0" or "" (no answer recorded).
type SubtestResultResponse struct {
	UserID         uint     `json:"user_id"`
	Username       string   `json:"username"`
	CorrectCount   int      `json:"correct_count"`
	IncorrectCount int      `json:"incorrect_count"`
	Breakdown      []string `json:"breakdown"`
	Score          string   `json:"score"`
}

// NewSubtestResultsResponse converts subtest result entities into response rows.
func NewSubtestResultsResponse(results []entity.SubtestResult) []SubtestResultResponse {
	out := make([]SubtestResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, SubtestResultResponse{
			UserID:         r.UserID,
			Username:       r.Username,
			CorrectCount:   r.CorrectCount,
			IncorrectCount: r.IncorrectCount,
			Breakdown:      r.Breakdown,
			Score:          fmt.Sprintf("%.2f", r.Score),
		})
	}
	return out
}
