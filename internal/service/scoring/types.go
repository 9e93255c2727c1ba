// Package scoring implements the difficulty-weighted scoring pipeline for a
// tryout package: answer evaluation, per-question difficulty estimation,
// score-pool allocation, per-subtest aggregation and the package leaderboard.
//
// The package is a pure batch transform. It holds no state between runs,
// performs no I/O and never mutates its input snapshot; callers assemble the
// snapshot from storage and consume the returned tables.
package scoring

// ScorePool is the fixed number of points distributed across one subtest's
// questions. A correct answer is worth the question's slice of this pool.
const ScorePool = 1000.0

// UnknownName is the display-name placeholder for answers whose user
// reference carries no name.
const UnknownName = "Unknown"

// Answer is a single user's response to a single question.
type Answer struct {
	UserID   uint
	Username string
	Email    string
	ChoiceID *uint // selected choice, nil when the user submitted free text
	FreeText string
}

// Question is an immutable snapshot of one question and every response to it.
// Exactly one grading path applies: choice comparison when CorrectChoiceID is
// set, free-text comparison otherwise.
type Question struct {
	ID               uint
	CorrectChoiceID  *uint    // nil for free-text questions
	ReferenceAnswers []string // free-text grading only; the first entry is canonical
	Answers          []Answer
}

// Subtest is a themed block of questions within a package. Questions appear
// in declaration order; correctness slots in the output are indexed by that
// order.
type Subtest struct {
	ID        uint
	Code      string
	Questions []Question
}

// Package is the top-level snapshot the pipeline runs over.
type Package struct {
	ID       uint
	Subtests []Subtest
}

// SubtestResult is one user's accumulated result for one subtest. Breakdown
// has one slot per question: "1" correct, "0" incorrect, "" no answer
// recorded.
type SubtestResult struct {
	UserID    uint
	Username  string
	Email     string
	Correct   int
	Incorrect int
	Score     float64
	Breakdown []string
}

// LeaderboardEntry is one user's package-wide ranking row.
type LeaderboardEntry struct {
	UserID       uint
	Username     string
	TotalScore   float64
	SubtestCount int
	AverageScore float64
}
