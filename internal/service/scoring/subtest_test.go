package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSubtest_ScenarioA(t *testing.T) {
	st := scenarioASubtest()
	scores := AllocateScores(&st)

	rows := AggregateSubtest(&st, scores)
	require.Len(t, rows, 2)

	// Ayu answered Q1 correctly and Q2 incorrectly.
	ayu := rows[10]
	require.NotNil(t, ayu)
	assert.Equal(t, "Ayu", ayu.Username)
	assert.Equal(t, 1, ayu.Correct)
	assert.Equal(t, 1, ayu.Incorrect)
	assert.Equal(t, []string{"1", "0"}, ayu.Breakdown)
	assert.InDelta(t, 333.33, ayu.Score, 0.01)

	// Bima answered both incorrectly.
	bima := rows[11]
	require.NotNil(t, bima)
	assert.Equal(t, 0, bima.Correct)
	assert.Equal(t, 2, bima.Incorrect)
	assert.Equal(t, []string{"0", "0"}, bima.Breakdown)
	assert.Zero(t, bima.Score)
}

func TestAggregateSubtest_UnansweredQuestionKeepsEmptySlot(t *testing.T) {
	st := Subtest{
		ID: 1,
		Questions: []Question{
			mcQuestion(101, 1, Answer{UserID: 10, Username: "Ayu", ChoiceID: choiceID(1)}),
			mcQuestion(102, 1), // nobody answered
			mcQuestion(103, 1, Answer{UserID: 10, Username: "Ayu", ChoiceID: choiceID(2)}),
		},
	}

	rows := AggregateSubtest(&st, AllocateScores(&st))
	require.Len(t, rows, 1)

	row := rows[10]
	assert.Equal(t, []string{"1", "", "0"}, row.Breakdown)
	assert.Equal(t, 1, row.Correct)
	// The skipped question is not counted as incorrect.
	assert.Equal(t, 1, row.Incorrect)
}

func TestAggregateSubtest_BlankNameGetsPlaceholder(t *testing.T) {
	st := Subtest{
		ID: 1,
		Questions: []Question{
			mcQuestion(101, 1, Answer{UserID: 10, Username: "", ChoiceID: choiceID(1)}),
		},
	}

	rows := AggregateSubtest(&st, AllocateScores(&st))
	require.Len(t, rows, 1)
	assert.Equal(t, UnknownName, rows[10].Username)
}

func TestAggregateSubtest_ScoreIsMonotonicInCorrectAnswers(t *testing.T) {
	// Holding the difficulty distribution fixed, answering one more question
	// correctly never lowers the score.
	base := Subtest{
		ID: 1,
		Questions: []Question{
			mcQuestion(101, 1,
				Answer{UserID: 10, ChoiceID: choiceID(2)},
				Answer{UserID: 11, ChoiceID: choiceID(1)},
			),
			mcQuestion(102, 1,
				Answer{UserID: 10, ChoiceID: choiceID(2)},
				Answer{UserID: 11, ChoiceID: choiceID(2)},
			),
			mcQuestion(103, 1,
				Answer{UserID: 10, ChoiceID: choiceID(2)},
				Answer{UserID: 11, ChoiceID: choiceID(2)},
			),
		},
	}
	scores := AllocateScores(&base)

	prev := -1.0
	for upTo := 0; upTo <= len(base.Questions); upTo++ {
		st := base
		st.Questions = make([]Question, len(base.Questions))
		copy(st.Questions, base.Questions)
		// Flip user 10's first upTo answers to the correct choice.
		for i := 0; i < upTo; i++ {
			answers := make([]Answer, len(base.Questions[i].Answers))
			copy(answers, base.Questions[i].Answers)
			answers[0].ChoiceID = choiceID(1)
			st.Questions[i].Answers = answers
		}

		row := AggregateSubtest(&st, scores)[10]
		require.NotNil(t, row)
		assert.GreaterOrEqual(t, row.Score, prev, "correct answers: %d", upTo)
		assert.Equal(t, upTo, row.Correct)
		prev = row.Score
	}
}

func TestAggregateSubtest_ScoreNeverExceedsPool(t *testing.T) {
	st := Subtest{
		ID: 1,
		Questions: []Question{
			mcQuestion(101, 1, Answer{UserID: 10, ChoiceID: choiceID(1)}),
			mcQuestion(102, 1, Answer{UserID: 10, ChoiceID: choiceID(1)}),
			mcQuestion(103, 1, Answer{UserID: 10, ChoiceID: choiceID(1)}),
		},
	}

	rows := AggregateSubtest(&st, AllocateScores(&st))
	assert.LessOrEqual(t, rows[10].Score, ScorePool+1e-6)
}
