package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboard_SortsByAverageDescending(t *testing.T) {
	// User 20 totals 900 over 3 subtests (avg 300), user 21 totals 1000 over
	// 2 subtests (avg 500): 21 ranks first despite the lower total.
	tables := []map[uint]*SubtestResult{
		{
			20: {UserID: 20, Username: "X", Score: 300},
			21: {UserID: 21, Username: "Y", Score: 400},
		},
		{
			20: {UserID: 20, Username: "X", Score: 300},
			21: {UserID: 21, Username: "Y", Score: 600},
		},
		{
			20: {UserID: 20, Username: "X", Score: 300},
		},
	}

	board := BuildLeaderboard(tables)
	require.Len(t, board, 2)

	assert.Equal(t, uint(21), board[0].UserID)
	assert.InDelta(t, 1000.0, board[0].TotalScore, 1e-9)
	assert.Equal(t, 2, board[0].SubtestCount)
	assert.InDelta(t, 500.0, board[0].AverageScore, 1e-9)

	assert.Equal(t, uint(20), board[1].UserID)
	assert.InDelta(t, 900.0, board[1].TotalScore, 1e-9)
	assert.Equal(t, 3, board[1].SubtestCount)
	assert.InDelta(t, 300.0, board[1].AverageScore, 1e-9)
}

func TestBuildLeaderboard_CountsParticipationRegardlessOfScore(t *testing.T) {
	tables := []map[uint]*SubtestResult{
		{30: {UserID: 30, Username: "Z", Score: 0}},
		{30: {UserID: 30, Username: "Z", Score: 0}},
	}

	board := BuildLeaderboard(tables)
	require.Len(t, board, 1)
	assert.Equal(t, 2, board[0].SubtestCount)
	assert.Zero(t, board[0].AverageScore)
}

func TestBuildLeaderboard_TieBreaksByAscendingUserID(t *testing.T) {
	tables := []map[uint]*SubtestResult{
		{
			42: {UserID: 42, Username: "B", Score: 500},
			7:  {UserID: 7, Username: "A", Score: 500},
			99: {UserID: 99, Username: "C", Score: 500},
		},
	}

	board := BuildLeaderboard(tables)
	require.Len(t, board, 3)
	assert.Equal(t, uint(7), board[0].UserID)
	assert.Equal(t, uint(42), board[1].UserID)
	assert.Equal(t, uint(99), board[2].UserID)
}

func TestBuildLeaderboard_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildLeaderboard(nil))
	assert.Empty(t, BuildLeaderboard([]map[uint]*SubtestResult{}))
}
