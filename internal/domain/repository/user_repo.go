package repository

import (
	"github.com/yourusername/tryout-api/internal/domain/entity"
)

// UserRepository defines read access to portal users. Accounts are owned by
// the portal; the engine only resolves identities and notification addresses.
type UserRepository interface {
	GetByID(id uint) (*entity.User, error)
	GetByIDs(ids []uint) ([]entity.User, error)
}
