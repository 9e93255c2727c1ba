package service

import (
	"github.com/yourusername/tryout-api/internal/domain/entity"
	"github.com/yourusername/tryout-api/internal/domain/repository"
)

// PackageService serves package metadata to the admin API.
type PackageService struct {
	packageRepo repository.PackageRepository
}

// NewPackageService creates a new package service
func NewPackageService(packageRepo repository.PackageRepository) *PackageService {
	return &PackageService{packageRepo: packageRepo}
}

// ListPackages returns a page of packages together with the total count.
func (s *PackageService) ListPackages(page, pageSize int) ([]entity.Package, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	} else if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize
	return s.packageRepo.List(pageSize, offset)
}

// GetPackage returns one package.
func (s *PackageService) GetPackage(id uint) (*entity.Package, error) {
	return s.packageRepo.GetByID(id)
}
