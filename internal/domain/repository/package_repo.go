package repository

import (
	"github.com/yourusername/tryout-api/internal/domain/entity"
)

// PackageRepository defines read access to tryout packages.
type PackageRepository interface {
	GetByID(id uint) (*entity.Package, error)
	// GetWithSubtests loads the package together with its subtests, each
	// subtest's questions in declaration order, their choices and every
	// user answer with the answering user preloaded. This is the snapshot
	// the scoring pipeline runs over.
	GetWithSubtests(id uint) (*entity.Package, error)
	// GetSubtests loads only the package's subtests, without questions.
	GetSubtests(packageID uint) ([]entity.Subtest, error)
	GetSubtestByID(id uint) (*entity.Subtest, error)
	List(limit, offset int) ([]entity.Package, int64, error)
}
