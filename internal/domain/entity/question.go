package entity

import (
	"time"
)

// Question belongs to one subtest. Exactly one grading path applies: when
// CorrectChoiceID is set the question is multiple-choice, otherwise free-text
// submissions are compared against ReferenceAnswers (first entry canonical).
type Question struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	SubtestID        uint         `gorm:"not null;index" json:"subtest_id"`
	Position         int          `gorm:"not null;default:0" json:"position"`
	Text             string       `gorm:"size:2000;not null" json:"text"`
	CorrectChoiceID  *uint        `json:"-"` // hidden from clients
	ReferenceAnswers StringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
	Choices          []Choice     `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
	Answers          []UserAnswer `gorm:"foreignKey:QuestionID" json:"-"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// TableName defines the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// IsMultipleChoice reports whether the question is graded by choice key.
func (q *Question) IsMultipleChoice() bool {
	return q.CorrectChoiceID != nil
}

// Choice is one selectable option of a multiple-choice question.
type Choice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Label      string    `gorm:"size:5;not null" json:"label"`
	Text       string    `gorm:"size:1000;not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName defines the table name for GORM
func (Choice) TableName() string {
	return "choices"
}
