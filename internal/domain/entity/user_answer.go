package entity

import (
	"time"
)

// UserAnswer is one user's response to one question: either a selected
// choice or a free-text submission, never both.
type UserAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	ChoiceID   *uint     `json:"choice_id,omitempty"`
	FreeText   string    `gorm:"size:2000" json:"free_text,omitempty"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName defines the table name for GORM
func (UserAnswer) TableName() string {
	return "user_answers"
}
