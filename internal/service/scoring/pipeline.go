package scoring

// SubtestTable pairs one subtest's metadata with its per-user result rows.
// QuestionIDs preserves the declaration order used for Breakdown slots.
type SubtestTable struct {
	SubtestID   uint
	Code        string
	QuestionIDs []uint
	Scores      map[uint]float64
	Rows        map[uint]*SubtestResult
}

// PackageResult is the output of one full pipeline run.
type PackageResult struct {
	PackageID   uint
	Subtests    []SubtestTable
	Leaderboard []LeaderboardEntry
}

// ScorePackage runs the full pipeline over one package snapshot: allocate
// per-question scores, aggregate each subtest, then build the ranked
// leaderboard. Subtests with no questions are skipped entirely. The run is
// deterministic: the same snapshot always yields the same result.
func ScorePackage(p *Package) *PackageResult {
	result := &PackageResult{PackageID: p.ID}

	tables := make([]map[uint]*SubtestResult, 0, len(p.Subtests))
	for i := range p.Subtests {
		st := &p.Subtests[i]
		if len(st.Questions) == 0 {
			continue
		}

		scores := AllocateScores(st)
		rows := AggregateSubtest(st, scores)

		questionIDs := make([]uint, len(st.Questions))
		for j := range st.Questions {
			questionIDs[j] = st.Questions[j].ID
		}

		result.Subtests = append(result.Subtests, SubtestTable{
			SubtestID:   st.ID,
			Code:        st.Code,
			QuestionIDs: questionIDs,
			Scores:      scores,
			Rows:        rows,
		})
		tables = append(tables, rows)
	}

	result.Leaderboard = BuildLeaderboard(tables)
	return result
}
