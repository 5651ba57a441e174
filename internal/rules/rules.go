// Package rules holds the pure validation engine for business drafts.
// Evaluation is deterministic: the first failing rule in the documented
// precedence is the one reported, and nothing here touches a store.
package rules

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"bizsetu/internal/models"
)

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{10}[0-9]{1}[A-Z]{1}[A-Z0-9]{1}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePatch checks the fields present in a sparse update against
// the draft-path rules. Absent fields are not evaluated. category is
// the value the merged document will carry (the patch's own value when
// present, otherwise the stored one), so branch rules fire for a
// shopType/vehicleTypes/brands patch even when the category key itself
// was not sent.
func ValidatePatch(p *models.BusinessPatch, category string) error {
	// Rule 1: business type
	if p.BusinessType != nil && !inSet(*p.BusinessType, []string{
		models.BusinessTypeOnline, models.BusinessTypeOffline, models.BusinessTypeBoth,
	}) {
		return errors.New("business type must be one of: online, offline, both")
	}

	// Rule 2: category
	if p.BusinessCategory != nil {
		cat := *p.BusinessCategory
		if !inSet(cat, models.BusinessCategories) {
			return fmt.Errorf("unknown business category %q", cat)
		}

		// Rule 3: Others needs a custom name
		if cat == models.CategoryOthers {
			if p.OtherCategoryName == nil || strings.TrimSpace(*p.OtherCategoryName) == "" {
				return errors.New("other category name is required when category is 'Others'")
			}
		}
	}

	switch {
	case models.IsVehicleCategory(category):
		// Rule 4: vehicle branch
		if p.BusinessCategory != nil || p.VehicleTypes != nil {
			if err := validateVehicleTypes(p.VehicleTypes); err != nil {
				return err
			}
		}
		if p.ShopType != nil && *p.ShopType != "" {
			return errors.New("shop type does not apply to vehicle categories")
		}
		if p.Brands != nil && len(*p.Brands) > 0 {
			return errors.New("brand selection does not apply to vehicle categories")
		}
	case category != "":
		// Rule 5: shop branch. The full cardinality check needs the
		// shop type, so it runs when the patch re-anchors the category;
		// a branch-field patch on its own still gets membership and
		// cap checks here and full cardinality on submit.
		if p.BusinessCategory != nil {
			if err := validateShopBranch(p); err != nil {
				return err
			}
		} else if err := validateShopFields(p); err != nil {
			return err
		}
		if p.VehicleTypes != nil && len(*p.VehicleTypes) > 0 {
			return errors.New("vehicle types apply only to vehicle categories")
		}
	default:
		// No category on record yet: only membership checks apply.
		if err := validateShopFields(p); err != nil {
			return err
		}
		if p.VehicleTypes != nil {
			for _, t := range *p.VehicleTypes {
				if !inSet(t, models.VehicleTypes) {
					return fmt.Errorf("unknown vehicle type %q", t)
				}
			}
		}
	}

	// Suggested-brand pair is both-or-neither even outside the category step.
	if err := validateSuggestedBrand(p.SuggestedBrandName, p.SuggestedBrandLogo); err != nil {
		return err
	}

	// Syntactic field checks for present fields.
	if p.Email != nil && *p.Email != "" && !emailPattern.MatchString(*p.Email) {
		return errors.New("email address is not valid")
	}
	if p.Website != nil && *p.Website != "" && !validURL(*p.Website) {
		return errors.New("website must be a valid URL")
	}
	if p.GSTNumber != nil && *p.GSTNumber != "" && !gstinPattern.MatchString(*p.GSTNumber) {
		return errors.New("GST number has invalid GSTIN format")
	}

	// Rule 8: location set
	if p.Locations != nil {
		if err := validateLocations(*p.Locations, p.PrimaryLocationID); err != nil {
			return err
		}
	}

	return nil
}

func validateVehicleTypes(vt *[]string) error {
	if vt == nil || len(*vt) == 0 {
		return errors.New("at least one vehicle type is required for vehicle categories")
	}
	for _, t := range *vt {
		if !inSet(t, models.VehicleTypes) {
			return fmt.Errorf("unknown vehicle type %q", t)
		}
	}
	return nil
}

func validateShopBranch(p *models.BusinessPatch) error {
	if p.ShopType == nil || strings.TrimSpace(*p.ShopType) == "" {
		return errors.New("shop type is required for non-vehicle categories")
	}
	shopType := *p.ShopType
	if !inSet(shopType, []string{models.ShopTypeAuthorised, models.ShopTypeLocal}) {
		return fmt.Errorf("unknown shop type %q", shopType)
	}

	var brands []string
	if p.Brands != nil {
		for _, id := range *p.Brands {
			brands = append(brands, id.String())
		}
	}
	hasSuggested := p.SuggestedBrandName != nil && strings.TrimSpace(*p.SuggestedBrandName) != ""

	switch shopType {
	case models.ShopTypeAuthorised:
		// A valid suggested-brand pair may stand in for the single brand.
		if len(brands) != 1 && !hasSuggested {
			return errors.New("authorised shops must select exactly one brand")
		}
	case models.ShopTypeLocal:
		if len(brands) < 1 && !hasSuggested {
			return errors.New("local shops must select at least one brand")
		}
		if len(brands) > models.MaxLocalShopBrands {
			return fmt.Errorf("local shops may select at most %d brands", models.MaxLocalShopBrands)
		}
	}
	return nil
}

// validateShopFields checks shop-branch fields present in a patch that
// does not re-anchor the category: enum membership and the brand cap.
func validateShopFields(p *models.BusinessPatch) error {
	if p.ShopType != nil && *p.ShopType != "" &&
		!inSet(*p.ShopType, []string{models.ShopTypeAuthorised, models.ShopTypeLocal}) {
		return fmt.Errorf("unknown shop type %q", *p.ShopType)
	}
	if p.Brands != nil && len(*p.Brands) > models.MaxLocalShopBrands {
		return fmt.Errorf("at most %d brands may be selected", models.MaxLocalShopBrands)
	}
	return nil
}

func validateSuggestedBrand(name *string, logo *models.StoredRef) error {
	hasName := name != nil && strings.TrimSpace(*name) != ""
	hasLogo := logo != nil
	if hasName != hasLogo {
		return errors.New("suggested brand name and logo must be provided together")
	}
	if hasLogo && !validURL(logo.PublicURL) {
		return errors.New("suggested brand logo must be a valid URL")
	}
	return nil
}

func validateLocations(locs []models.LocationInput, primaryID *string) error {
	if len(locs) == 0 {
		return errors.New("at least one business location is required")
	}
	seen := make(map[string]bool, len(locs))
	for i, loc := range locs {
		if strings.TrimSpace(loc.ID) == "" {
			return fmt.Errorf("location %d is missing an id", i+1)
		}
		if seen[loc.ID] {
			return fmt.Errorf("duplicate location id %q", loc.ID)
		}
		seen[loc.ID] = true
		if strings.TrimSpace(loc.FullAddress) == "" {
			return fmt.Errorf("location %q is missing an address", loc.ID)
		}
		if loc.Latitude == nil || loc.Longitude == nil {
			return fmt.Errorf("location %q is missing coordinates", loc.ID)
		}
		if *loc.Latitude < -90 || *loc.Latitude > 90 || *loc.Longitude < -180 || *loc.Longitude > 180 {
			return fmt.Errorf("location %q has out-of-range coordinates", loc.ID)
		}
	}
	if primaryID == nil || strings.TrimSpace(*primaryID) == "" {
		return errors.New("a primary location must be chosen")
	}
	if !seen[*primaryID] {
		return errors.New("primary location id is not in the submitted location list")
	}
	return nil
}

// ValidateSubmission checks the merged candidate document for
// completeness before it may leave draft. locationCount is the size of
// the location set the document will have after this request.
func ValidateSubmission(d *models.BusinessDraft, locationCount int) error {
	if strings.TrimSpace(d.BusinessName) == "" {
		return errors.New("business name is required before submitting")
	}
	if !inSet(d.BusinessType, []string{
		models.BusinessTypeOnline, models.BusinessTypeOffline, models.BusinessTypeBoth,
	}) {
		return errors.New("business type is required before submitting")
	}
	if d.BusinessCategory == "" {
		return errors.New("business category is required before submitting")
	}
	if !inSet(d.BusinessCategory, models.BusinessCategories) {
		return fmt.Errorf("unknown business category %q", d.BusinessCategory)
	}
	if d.BusinessCategory == models.CategoryOthers && strings.TrimSpace(d.OtherCategoryName) == "" {
		return errors.New("other category name is required when category is 'Others'")
	}
	if models.IsVehicleCategory(d.BusinessCategory) {
		if len(d.VehicleTypes) == 0 {
			return errors.New("at least one vehicle type is required for vehicle categories")
		}
		for _, t := range d.VehicleTypes {
			if !inSet(t, models.VehicleTypes) {
				return fmt.Errorf("unknown vehicle type %q", t)
			}
		}
		if d.ShopType != "" || len(d.Brands) > 0 {
			return errors.New("vehicle categories cannot carry a shop type or brand selection")
		}
	} else {
		if len(d.VehicleTypes) > 0 {
			return errors.New("vehicle types apply only to vehicle categories")
		}
		if d.ShopType == "" {
			return errors.New("shop type is required for non-vehicle categories")
		}
		if !inSet(d.ShopType, []string{models.ShopTypeAuthorised, models.ShopTypeLocal}) {
			return fmt.Errorf("unknown shop type %q", d.ShopType)
		}
		hasSuggested := strings.TrimSpace(d.SuggestedBrandName) != ""
		if d.ShopType == models.ShopTypeAuthorised && len(d.Brands) != 1 && !hasSuggested {
			return errors.New("authorised shops must select exactly one brand")
		}
		if d.ShopType == models.ShopTypeLocal && len(d.Brands) < 1 && !hasSuggested {
			return errors.New("local shops must select at least one brand")
		}
		if len(d.Brands) > models.MaxLocalShopBrands {
			return fmt.Errorf("local shops may select at most %d brands", models.MaxLocalShopBrands)
		}
	}
	if strings.TrimSpace(d.ContactNumber) == "" {
		return errors.New("a contact number is required before submitting")
	}
	if locationCount < 1 {
		return errors.New("at least one business location is required before submitting")
	}
	if d.PrimaryLocationID == "" {
		return errors.New("a primary location must be chosen before submitting")
	}
	return nil
}

// ValidateUpload gates a file before any storage call.
func ValidateUpload(kind, contentType string, size int64) error {
	switch kind {
	case models.UploadKindImage:
		if size > models.MaxImageSize {
			return errors.New("image exceeds the 5 MB size limit")
		}
		if !strings.HasPrefix(contentType, "image/") {
			return errors.New("file must be an image")
		}
	case models.UploadKindDocument:
		if size > models.MaxDocumentSize {
			return errors.New("document exceeds the 5 MB size limit")
		}
		if contentType != "application/pdf" && !strings.HasPrefix(contentType, "image/") {
			return errors.New("document must be a PDF or an image")
		}
	case models.UploadKindVideo:
		if size > models.MaxVideoSize {
			return errors.New("video exceeds the 50 MB size limit")
		}
		if !strings.HasPrefix(contentType, "video/") {
			return errors.New("file must be a video")
		}
	default:
		return fmt.Errorf("unknown upload kind %q", kind)
	}
	return nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func inSet(v string, set []string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
