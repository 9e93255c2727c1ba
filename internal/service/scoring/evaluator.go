package scoring

import "strings"

// IsCorrect reports whether a single response answers the question correctly.
//
// Multiple-choice questions compare the selected choice against the answer
// key; a missing selection is never correct. Free-text questions compare the
// trimmed, lower-cased submission against the first reference answer. A
// question with no reference answers, or a response with no submission at
// all, grades as incorrect rather than erroring.
func IsCorrect(q *Question, a *Answer) bool {
	if q.CorrectChoiceID != nil {
		return a.ChoiceID != nil && *a.ChoiceID == *q.CorrectChoiceID
	}
	if len(q.ReferenceAnswers) == 0 {
		return false
	}
	submitted := normalizeText(a.FreeText)
	if submitted == "" {
		return false
	}
	return submitted == normalizeText(q.ReferenceAnswers[0])
}

func normalizeText(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
