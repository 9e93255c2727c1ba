package scoring

// Difficulty returns the fraction of respondents who answered q incorrectly,
// always within [0,1]. A question nobody answered is treated as maximally
// hard (1) so it keeps its share of the score pool instead of silently
// vanishing from it.
func Difficulty(q *Question) float64 {
	n := len(q.Answers)
	if n == 0 {
		return 1
	}
	correct := 0
	for i := range q.Answers {
		if IsCorrect(q, &q.Answers[i]) {
			correct++
		}
	}
	return 1 - float64(correct)/float64(n)
}
