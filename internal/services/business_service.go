package services

import (
	"context"
	"errors"
	"log"
	"time"

	"bizsetu/internal/caching"
	"bizsetu/internal/common"
	"bizsetu/internal/models"
	"bizsetu/internal/repositories"
	"bizsetu/internal/rules"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const draftCacheTTL = 5 * time.Minute

// BusinessService runs the onboarding pipeline: validate the sparse
// patch, decide the next status, merge, persist, reconcile locations
// when the patch carries them, and keep the audit trail and cache
// consistent.
type BusinessService interface {
	GetDraft(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error)
	ApplyPatch(ctx context.Context, ownerID uuid.UUID, patch *models.BusinessPatch) (*models.BusinessDraft, error)
	AttachKYCVideo(ctx context.Context, ownerID uuid.UUID, video *models.StoredRef) error
}

type businessService struct {
	businessRepo repositories.BusinessRepository
	locationRepo repositories.LocationRepository
	auditRepo    repositories.AuditLogsRepository
	locationSvc  LocationService
	brandSvc     BrandService
	mediaSvc     MediaService
	cacheSvc     caching.CacheService
}

func NewBusinessService(businessRepo repositories.BusinessRepository, locationRepo repositories.LocationRepository,
	auditRepo repositories.AuditLogsRepository, locationSvc LocationService, brandSvc BrandService,
	mediaSvc MediaService, cacheSvc caching.CacheService) BusinessService {
	return &businessService{
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		auditRepo:    auditRepo,
		locationSvc:  locationSvc,
		brandSvc:     brandSvc,
		mediaSvc:     mediaSvc,
		cacheSvc:     cacheSvc,
	}
}

// MergeDraft computes the next persisted document. A nil patch field
// never touches the stored value; a non-nil field overwrites it.
// Switching category branch clears the other branch's fields so a
// submitted draft never carries both vehicle types and a shop type.
func MergeDraft(prev *models.BusinessDraft, patch *models.BusinessPatch, status string, now time.Time) *models.BusinessDraft {
	var next models.BusinessDraft
	if prev != nil {
		next = *prev
	} else {
		next.CreatedAt = now
	}
	next.Status = status
	next.UpdatedAt = now

	if patch.BusinessName != nil {
		next.BusinessName = *patch.BusinessName
	}
	if patch.BusinessDescription != nil {
		next.BusinessDescription = *patch.BusinessDescription
	}
	if patch.BusinessCategory != nil {
		next.BusinessCategory = *patch.BusinessCategory
		if models.IsVehicleCategory(next.BusinessCategory) {
			next.ShopType = ""
			next.Brands = nil
			next.SuggestedBrandName = ""
			next.SuggestedBrandLogo = nil
		} else {
			next.VehicleTypes = nil
		}
	}
	if patch.OtherCategoryName != nil {
		next.OtherCategoryName = *patch.OtherCategoryName
	}
	if patch.VehicleTypes != nil {
		next.VehicleTypes = append([]string(nil), (*patch.VehicleTypes)...)
	}
	if patch.ShopType != nil {
		next.ShopType = *patch.ShopType
	}
	if patch.Brands != nil {
		next.Brands = append([]uuid.UUID(nil), (*patch.Brands)...)
	}
	if patch.SuggestedBrandName != nil {
		next.SuggestedBrandName = *patch.SuggestedBrandName
	}
	if patch.SuggestedBrandLogo != nil {
		next.SuggestedBrandLogo = patch.SuggestedBrandLogo
	}
	if patch.BusinessType != nil {
		next.BusinessType = *patch.BusinessType
	}
	if patch.Email != nil {
		next.Email = *patch.Email
	}
	if patch.Website != nil {
		next.Website = *patch.Website
	}
	if patch.GSTNumber != nil {
		next.GSTNumber = *patch.GSTNumber
	}
	if patch.GSTDocument != nil {
		next.GSTDocument = patch.GSTDocument
	}
	if patch.ContactName != nil {
		next.ContactName = *patch.ContactName
	}
	if patch.ContactNumber != nil {
		next.ContactNumber = *patch.ContactNumber
	}
	if patch.BusinessLogo != nil {
		next.BusinessLogo = patch.BusinessLogo
	}
	if patch.PrimaryLocationID != nil {
		next.PrimaryLocationID = *patch.PrimaryLocationID
	}

	return &next
}

func (s *businessService) GetDraft(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error) {
	if cached, err := s.cacheSvc.GetBusinessDraft(ctx, ownerID); err == nil && cached != nil {
		return cached, nil
	}

	draft, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.cacheSvc.SetBusinessDraft(ctx, draft, draftCacheTTL); err != nil {
		log.Printf("WARN: failed to cache draft for %s: %v", ownerID, err)
	}
	return draft, nil
}

func (s *businessService) ApplyPatch(ctx context.Context, ownerID uuid.UUID, patch *models.BusinessPatch) (*models.BusinessDraft, error) {
	prev, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		prev = nil
	}

	// Branch rules anchor on the category the merged document will
	// carry, so a shopType or brands patch without the category key is
	// still checked against the stored category.
	category := ""
	if prev != nil {
		category = prev.BusinessCategory
	}
	if patch.BusinessCategory != nil {
		category = *patch.BusinessCategory
	}
	if err := rules.ValidatePatch(patch, category); err != nil {
		return nil, common.NewValidationError(err.Error())
	}

	prevStatus := ""
	if prev != nil {
		prevStatus = prev.Status
	}
	nextStatus := rules.NextStatus(prevStatus, patch.RequestedStatus())

	now := time.Now()
	merged := MergeDraft(prev, patch, nextStatus, now)
	merged.OwnerID = ownerID

	var existingLocs []*models.BusinessLocation
	submitting := nextStatus == models.StatusSubmitted && (prev == nil || !prev.Locked())
	if patch.HasLocations() || submitting {
		existingLocs, err = s.locationRepo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
	}

	if submitting {
		locationCount := len(existingLocs)
		if patch.HasLocations() {
			locationCount = len(*patch.Locations)
		}
		// Brand ids are only resolved against the catalog on submit;
		// the draft path stays local for responsiveness.
		if !models.IsVehicleCategory(merged.BusinessCategory) {
			if err := s.brandSvc.EnsureActive(ctx, merged.Brands); err != nil {
				return nil, err
			}
		}
		if err := rules.ValidateSubmission(merged, locationCount); err != nil {
			return nil, common.NewValidationError(err.Error())
		}
	}

	if err := s.businessRepo.Upsert(ctx, merged); err != nil {
		return nil, err
	}

	if patch.HasLocations() {
		primaryImageLocID := common.SafeString(patch.PrimaryShopImageLocID)
		if err := s.locationSvc.Reconcile(ctx, merged, existingLocs, *patch.Locations,
			patch.PrimaryShopImage, primaryImageLocID); err != nil {
			return nil, err
		}
	}

	s.discardReplaced(ctx, prev, patch)
	s.audit(ctx, ownerID, prev, merged)

	if err := s.cacheSvc.DeleteBusinessDraft(ctx, ownerID); err != nil {
		log.Printf("WARN: failed to invalidate draft cache for %s: %v", ownerID, err)
	}

	return merged, nil
}

// discardReplaced removes store objects a file-carrying patch just
// overwrote. Best-effort: an orphaned object never fails a write that
// already committed.
func (s *businessService) discardReplaced(ctx context.Context, prev *models.BusinessDraft, patch *models.BusinessPatch) {
	if prev == nil {
		return
	}
	replaced := []struct {
		old  *models.StoredRef
		next *models.StoredRef
	}{
		{prev.BusinessLogo, patch.BusinessLogo},
		{prev.GSTDocument, patch.GSTDocument},
		{prev.SuggestedBrandLogo, patch.SuggestedBrandLogo},
	}
	for _, r := range replaced {
		if r.old == nil || r.next == nil || r.old.Path == r.next.Path {
			continue
		}
		if err := s.mediaSvc.Discard(ctx, r.old); err != nil {
			log.Printf("WARN: failed to remove replaced object %s: %v", r.old.Path, err)
		}
	}
}

func (s *businessService) AttachKYCVideo(ctx context.Context, ownerID uuid.UUID, video *models.StoredRef) error {
	draft, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewValidationError("no business draft to attach a KYC video to")
		}
		return err
	}
	if draft.Status != models.StatusSubmitted && draft.Status != models.StatusPending {
		return common.NewValidationError("KYC video can only be uploaded while verification is in progress")
	}

	if err := s.businessRepo.SetKYCVideo(ctx, ownerID, video); err != nil {
		return err
	}

	if old := draft.KYCVideo; old != nil && old.Path != video.Path {
		if err := s.mediaSvc.Discard(ctx, old); err != nil {
			log.Printf("WARN: failed to remove replaced object %s: %v", old.Path, err)
		}
	}

	entry := &models.AuditLog{
		OwnerID:   ownerID,
		Entity:    models.EntityBusiness,
		RecordID:  ownerID.String(),
		Action:    models.ActionUpdate,
		NewValues: models.JSONB{"kyc_video": video.PublicURL},
		ChangedBy: &ownerID,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("WARN: failed to write audit entry for %s: %v", ownerID, err)
	}

	if err := s.cacheSvc.DeleteBusinessDraft(ctx, ownerID); err != nil {
		log.Printf("WARN: failed to invalidate draft cache for %s: %v", ownerID, err)
	}
	return nil
}

// audit appends trail entries for an accepted write. Audit failures
// are logged, never surfaced: the trail is additive and must not fail
// a write that already committed.
func (s *businessService) audit(ctx context.Context, ownerID uuid.UUID, prev, merged *models.BusinessDraft) {
	action := models.ActionUpdate
	if prev == nil {
		action = models.ActionInsert
	}
	entry := &models.AuditLog{
		OwnerID:   ownerID,
		Entity:    models.EntityBusiness,
		RecordID:  ownerID.String(),
		Action:    action,
		NewValues: models.JSONB{"status": merged.Status, "business_name": merged.BusinessName},
		ChangedBy: &ownerID,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("WARN: failed to write audit entry for %s: %v", ownerID, err)
	}

	if prev != nil && prev.Status != merged.Status {
		change := &models.AuditLog{
			OwnerID:   ownerID,
			Entity:    models.EntityBusiness,
			RecordID:  ownerID.String(),
			Action:    models.ActionStatusChange,
			NewValues: models.JSONB{"from": prev.Status, "to": merged.Status},
			ChangedBy: &ownerID,
		}
		if err := s.auditRepo.Create(ctx, change); err != nil {
			log.Printf("WARN: failed to write status audit entry for %s: %v", ownerID, err)
		}
	}
}
