package scoring

// AggregateSubtest folds every answer in st into per-user rows keyed by user
// ID. Questions are walked in declaration order; slot i of a row's Breakdown
// is set to "1" or "0" once the user answered question i and stays "" when no
// answer was recorded — an unanswered question is not counted as incorrect.
// A correct answer adds the question's allocated score to the running total,
// so a row's score can never exceed the subtest's pool.
func AggregateSubtest(st *Subtest, scores map[uint]float64) map[uint]*SubtestResult {
	rows := make(map[uint]*SubtestResult)
	for i := range st.Questions {
		q := &st.Questions[i]
		for j := range q.Answers {
			a := &q.Answers[j]
			row, ok := rows[a.UserID]
			if !ok {
				name := a.Username
				if name == "" {
					name = UnknownName
				}
				row = &SubtestResult{
					UserID:    a.UserID,
					Username:  name,
					Email:     a.Email,
					Breakdown: make([]string, len(st.Questions)),
				}
				rows[a.UserID] = row
			}
			if IsCorrect(q, a) {
				row.Breakdown[i] = "1"
				row.Correct++
				row.Score += scores[q.ID]
			} else {
				row.Breakdown[i] = "0"
				row.Incorrect++
			}
		}
	}
	return rows
}
