package repository

import (
	"github.com/yourusername/tryout-api/internal/domain/entity"
)

// QuestionRepository defines read access to questions and their answers.
type QuestionRepository interface {
	GetByID(id uint) (*entity.Question, error)
	// GetBySubtestID returns the subtest's questions in declaration order
	// with choices and user answers preloaded.
	GetBySubtestID(subtestID uint) ([]entity.Question, error)
	CountBySubtestID(subtestID uint) (int64, error)
}
