package scoring

// AllocateScores distributes ScorePool across st's questions in proportion to
// their difficulty, keyed by question ID. When every question has zero total
// difficulty the pool is split evenly, so the allocation always sums to
// ScorePool. Subtests with no questions must be skipped by the caller.
func AllocateScores(st *Subtest) map[uint]float64 {
	scores := make(map[uint]float64, len(st.Questions))
	difficulties := make([]float64, len(st.Questions))

	total := 0.0
	for i := range st.Questions {
		d := Difficulty(&st.Questions[i])
		difficulties[i] = d
		total += d
	}

	for i := range st.Questions {
		if total > 0 {
			scores[st.Questions[i].ID] = ScorePool * difficulties[i] / total
		} else {
			scores[st.Questions[i].ID] = ScorePool / float64(len(st.Questions))
		}
	}
	return scores
}
