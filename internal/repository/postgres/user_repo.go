package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID returns one user.
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByIDs returns the users matching ids; missing ids are simply absent
// from the result.
func (r *UserRepo) GetByIDs(ids []uint) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []entity.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}
