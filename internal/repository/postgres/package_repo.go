package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/tryout-api/internal/domain/entity"
	apperrors "github.com/yourusername/tryout-api/internal/pkg/errors"
)

// PackageRepo implements repository.PackageRepository
type PackageRepo struct {
	db *gorm.DB
}

// NewPackageRepo creates a new package repository
func NewPackageRepo(db *gorm.DB) *PackageRepo {
	return &PackageRepo{db: db}
}

// GetByID returns one package without associations.
func (r *PackageRepo) GetByID(id uint) (*entity.Package, error) {
	var pkg entity.Package
	if err := r.db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// GetWithSubtests loads the full scoring snapshot: subtests, questions in
// declaration order, choices, and every answer with the answering user.
func (r *PackageRepo) GetWithSubtests(id uint) (*entity.Package, error) {
	var pkg entity.Package
	err := r.db.
		Preload("Subtests").
		Preload("Subtests.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC, questions.id ASC")
		}).
		Preload("Subtests.Questions.Choices").
		Preload("Subtests.Questions.Answers").
		Preload("Subtests.Questions.Answers.User").
		First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

// GetSubtests loads only the package's subtests, without questions.
func (r *PackageRepo) GetSubtests(packageID uint) ([]entity.Subtest, error) {
	var subtests []entity.Subtest
	err := r.db.Where("package_id = ?", packageID).Order("id ASC").Find(&subtests).Error
	return subtests, err
}

// GetSubtestByID returns one subtest without questions.
func (r *PackageRepo) GetSubtestByID(id uint) (*entity.Subtest, error) {
	var subtest entity.Subtest
	if err := r.db.First(&subtest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &subtest, nil
}

// List returns packages with pagination.
func (r *PackageRepo) List(limit, offset int) ([]entity.Package, int64, error) {
	var packages []entity.Package
	var total int64

	if err := r.db.Model(&entity.Package{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&packages).Error
	if err != nil {
		return nil, 0, err
	}
	return packages, total, nil
}
