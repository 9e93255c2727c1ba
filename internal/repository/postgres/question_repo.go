package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
)

// QuestionRepo implements repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetByID returns one question with its choices.
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Preload("Choices").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetBySubtestID returns the subtest's questions in declaration order with
// choices and answers preloaded.
func (r *QuestionRepo) GetBySubtestID(subtestID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.
		Preload("Choices").
		Preload("Answers").
		Preload("Answers.User").
		Where("subtest_id = ?", subtestID).
		Order("position ASC, id ASC").
		Find(&questions).Error
	return questions, err
}

// CountBySubtestID returns the number of questions in a subtest.
func (r *QuestionRepo) CountBySubtestID(subtestID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Where("subtest_id = ?", subtestID).Count(&count).Error
	return count, err
}
