package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func choiceID(v uint) *uint {
	return &v
}

func TestIsCorrect_MultipleChoice(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		answer   Answer
		want     bool
	}{
		{
			name:     "matching choice",
			question: Question{CorrectChoiceID: choiceID(3)},
			answer:   Answer{ChoiceID: choiceID(3)},
			want:     true,
		},
		{
			name:     "wrong choice",
			question: Question{CorrectChoiceID: choiceID(3)},
			answer:   Answer{ChoiceID: choiceID(4)},
			want:     false,
		},
		{
			name:     "missing selection is never correct",
			question: Question{CorrectChoiceID: choiceID(3)},
			answer:   Answer{ChoiceID: nil},
			want:     false,
		},
		{
			name:     "missing selection with free text fallback text",
			question: Question{CorrectChoiceID: choiceID(3), ReferenceAnswers: []string{"3"}},
			answer:   Answer{ChoiceID: nil, FreeText: "3"},
			want:     false, // answer key present, so the free-text path never applies
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCorrect(&tc.question, &tc.answer))
		})
	}
}

func TestIsCorrect_FreeText(t *testing.T) {
	question := Question{ReferenceAnswers: []string{"Paris"}}

	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{name: "exact match", submitted: "Paris", want: true},
		{name: "trailing space", submitted: "Paris ", want: true},
		{name: "lower case", submitted: "paris", want: true},
		{name: "leading space upper case", submitted: " PARIS", want: true},
		{name: "wrong answer", submitted: "London", want: false},
		{name: "empty submission", submitted: "", want: false},
		{name: "whitespace only submission", submitted: "   ", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCorrect(&question, &Answer{FreeText: tc.submitted}))
		})
	}
}

func TestIsCorrect_OnlyFirstReferenceAnswerIsCanonical(t *testing.T) {
	question := Question{ReferenceAnswers: []string{"Paris", "paris, france"}}

	assert.True(t, IsCorrect(&question, &Answer{FreeText: "paris"}))
	assert.False(t, IsCorrect(&question, &Answer{FreeText: "paris, france"}))
}

func TestIsCorrect_NoReferenceAnswers(t *testing.T) {
	// A free-text question with an empty answer key grades every submission
	// as incorrect instead of erroring.
	question := Question{ReferenceAnswers: nil}

	assert.False(t, IsCorrect(&question, &Answer{FreeText: "anything"}))
	assert.False(t, IsCorrect(&question, &Answer{}))
}
