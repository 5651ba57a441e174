package services

import (
	"context"
	"log"
	"time"

	"bizsetu/internal/caching"
	"bizsetu/internal/common"
	"bizsetu/internal/models"
	"bizsetu/internal/repositories"

	"github.com/google/uuid"
)

const brandCacheTTL = time.Hour

// BrandService reads the external brand catalog. The catalog is not
// owned here; only active entries are ever served or accepted.
type BrandService interface {
	ListActive(ctx context.Context, kind string) ([]*models.Brand, error)
	// EnsureActive fails with a ValidationError if any id does not
	// resolve to an active catalog entry. Used on the submit path only.
	EnsureActive(ctx context.Context, ids []uuid.UUID) error
	RefreshCatalogCache(ctx context.Context) error
}

type brandService struct {
	brandRepo repositories.BrandRepository
	cacheSvc  caching.CacheService
}

func NewBrandService(brandRepo repositories.BrandRepository, cacheSvc caching.CacheService) BrandService {
	return &brandService{brandRepo: brandRepo, cacheSvc: cacheSvc}
}

func (s *brandService) ListActive(ctx context.Context, kind string) ([]*models.Brand, error) {
	if cached, err := s.cacheSvc.GetBrands(ctx, kind); err == nil && cached != nil {
		return cached, nil
	}

	brands, err := s.brandRepo.ListActive(ctx, kind)
	if err != nil {
		return nil, err
	}
	if err := s.cacheSvc.SetBrands(ctx, kind, brands, brandCacheTTL); err != nil {
		log.Printf("WARN: failed to cache %s brands: %v", kind, err)
	}
	return brands, nil
}

func (s *brandService) EnsureActive(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	active, err := s.brandRepo.ActiveIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if !active[id] {
			return common.NewValidationError("one or more selected brands are no longer available")
		}
	}
	return nil
}

func (s *brandService) RefreshCatalogCache(ctx context.Context) error {
	for _, kind := range []string{models.BrandKindShop, models.BrandKindVehicle} {
		brands, err := s.brandRepo.ListActive(ctx, kind)
		if err != nil {
			return err
		}
		if err := s.cacheSvc.SetBrands(ctx, kind, brands, brandCacheTTL); err != nil {
			return err
		}
	}
	return nil
}
