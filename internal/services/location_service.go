package services

import (
	"context"
	"log"
	"time"

	"bizsetu/internal/caching"
	"bizsetu/internal/models"
	"bizsetu/internal/repositories"

	"github.com/google/uuid"
)

const locationCacheTTL = 5 * time.Minute

// LocationService reconciles the client's full replacement location
// list against the persisted set and serves location reads.
type LocationService interface {
	Reconcile(ctx context.Context, draft *models.BusinessDraft, existing []*models.BusinessLocation,
		incoming []models.LocationInput, primaryImage *models.StoredRef, primaryImageLocID string) error
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error)
}

type locationService struct {
	locationRepo repositories.LocationRepository
	cacheSvc     caching.CacheService
}

func NewLocationService(locationRepo repositories.LocationRepository, cacheSvc caching.CacheService) LocationService {
	return &locationService{locationRepo: locationRepo, cacheSvc: cacheSvc}
}

// BuildPlan diffs the incoming replacement set against the persisted
// one. Existing ids absent from the incoming list are deleted; every
// incoming location becomes an upsert carrying the derived isPrimary
// flag and the draft's denormalized identity fields. A shop image
// already on record survives an update; the uploaded primary image is
// attached only when its declared location id is the primary one.
func BuildPlan(draft *models.BusinessDraft, existing []*models.BusinessLocation,
	incoming []models.LocationInput, primaryImage *models.StoredRef, primaryImageLocID string,
	now time.Time) *models.BatchPlan {

	existingByID := make(map[string]*models.BusinessLocation, len(existing))
	for _, loc := range existing {
		existingByID[loc.ID] = loc
	}
	incomingIDs := make(map[string]bool, len(incoming))
	for _, in := range incoming {
		incomingIDs[in.ID] = true
	}

	plan := &models.BatchPlan{OwnerID: draft.OwnerID}

	for _, loc := range existing {
		if !incomingIDs[loc.ID] {
			plan.Deletes = append(plan.Deletes, loc.ID)
		}
	}

	logoURL := ""
	if draft.BusinessLogo != nil {
		logoURL = draft.BusinessLogo.PublicURL
	}

	for _, in := range incoming {
		prev, exists := existingByID[in.ID]

		loc := &models.BusinessLocation{
			ID:               in.ID,
			OwnerID:          draft.OwnerID,
			FullAddress:      in.FullAddress,
			ContactNumber:    in.ContactNumber,
			BusinessHours:    in.BusinessHours,
			IsPrimary:        in.ID == draft.PrimaryLocationID,
			BusinessName:     draft.BusinessName,
			BusinessLogoURL:  logoURL,
			BusinessCategory: draft.BusinessCategory,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if in.Latitude != nil {
			loc.Latitude = *in.Latitude
		}
		if in.Longitude != nil {
			loc.Longitude = *in.Longitude
		}
		if exists {
			loc.CreatedAt = prev.CreatedAt
			loc.ShopImage = prev.ShopImage
		}
		if primaryImage != nil && in.ID == primaryImageLocID && in.ID == draft.PrimaryLocationID {
			loc.ShopImage = primaryImage
		}

		plan.Upserts = append(plan.Upserts, models.LocationUpsert{Location: loc, IsNew: !exists})
	}

	return plan
}

func (s *locationService) Reconcile(ctx context.Context, draft *models.BusinessDraft, existing []*models.BusinessLocation,
	incoming []models.LocationInput, primaryImage *models.StoredRef, primaryImageLocID string) error {

	plan := BuildPlan(draft, existing, incoming, primaryImage, primaryImageLocID, time.Now())
	if err := s.locationRepo.Apply(ctx, plan); err != nil {
		return err
	}

	if err := s.cacheSvc.DeleteLocations(ctx, draft.OwnerID); err != nil {
		log.Printf("WARN: failed to invalidate location cache for %s: %v", draft.OwnerID, err)
	}
	return nil
}

func (s *locationService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error) {
	if cached, err := s.cacheSvc.GetLocations(ctx, ownerID); err == nil && cached != nil {
		return cached, nil
	}

	locations, err := s.locationRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.cacheSvc.SetLocations(ctx, ownerID, locations, locationCacheTTL); err != nil {
		log.Printf("WARN: failed to cache locations for %s: %v", ownerID, err)
	}
	return locations, nil
}
