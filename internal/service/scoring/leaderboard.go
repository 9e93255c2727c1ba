package scoring

import "sort"

// BuildLeaderboard reduces the per-subtest tables into package-wide totals,
// merging each table exactly once. SubtestCount increments once per user per
// table regardless of the score, and the average is total/count (zero when a
// user participated in no subtest). Entries are ordered by average score
// descending; equal averages are broken by ascending user ID so the ranking
// is reproducible across runs with identical input.
func BuildLeaderboard(tables []map[uint]*SubtestResult) []LeaderboardEntry {
	totals := make(map[uint]*LeaderboardEntry)
	for _, table := range tables {
		for userID, row := range table {
			entry, ok := totals[userID]
			if !ok {
				entry = &LeaderboardEntry{UserID: userID, Username: row.Username}
				totals[userID] = entry
			}
			entry.TotalScore += row.Score
			entry.SubtestCount++
		}
	}

	board := make([]LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		if entry.SubtestCount > 0 {
			entry.AverageScore = entry.TotalScore / float64(entry.SubtestCount)
		}
		board = append(board, *entry)
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].AverageScore != board[j].AverageScore {
			return board[i].AverageScore > board[j].AverageScore
		}
		return board[i].UserID < board[j].UserID
	})
	return board
}
