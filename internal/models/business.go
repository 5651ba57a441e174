package models

import (
	"time"

	"github.com/google/uuid"
)

// Business draft statuses. A draft is editable by the owner only while
// in StatusDraft (or after an explicit rejected→draft reset); submitted
// and pending both lock it while it awaits moderation.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusRejected  = "rejected"
)

// Business types
const (
	BusinessTypeOnline  = "online"
	BusinessTypeOffline = "offline"
	BusinessTypeBoth    = "both"
)

// Shop types
const (
	ShopTypeAuthorised = "authorised shop"
	ShopTypeLocal      = "local shop"
)

// CategoryOthers requires an accompanying custom category name.
const CategoryOthers = "Others"

// BusinessCategories is the allowed category set.
var BusinessCategories = []string{
	"Cars", "Bikes", "Electronics", "Fashion", "Grocery",
	"Home Appliances", "Mobiles", CategoryOthers,
}

// VehicleCategories are the categories that take vehicle types instead
// of a shop type and brand list.
var VehicleCategories = []string{"Cars", "Bikes"}

// VehicleTypes is the allowed vehicle type set.
var VehicleTypes = []string{
	"2 wheeler", "3 wheeler", "4 wheeler", "6 wheeler", "heavy vehicle",
}

// MaxLocalShopBrands caps the brand list for local shops.
const MaxLocalShopBrands = 5

// BusinessDraft is the onboarding document, one per owner.
type BusinessDraft struct {
	OwnerID             uuid.UUID   `json:"owner_id" db:"owner_id"`
	Status              string      `json:"status" db:"status"`
	BusinessName        string      `json:"business_name" db:"business_name"`
	BusinessDescription string      `json:"business_description" db:"business_description"`
	BusinessCategory    string      `json:"business_category" db:"business_category"`
	OtherCategoryName   string      `json:"other_category_name" db:"other_category_name"`
	VehicleTypes        []string    `json:"vehicle_types" db:"vehicle_types"`
	ShopType            string      `json:"shop_type" db:"shop_type"`
	Brands              []uuid.UUID `json:"brands" db:"brands"`
	SuggestedBrandName  string      `json:"suggested_brand_name" db:"suggested_brand_name"`
	SuggestedBrandLogo  *StoredRef  `json:"suggested_brand_logo" db:"suggested_brand_logo"`
	BusinessType        string      `json:"business_type" db:"business_type"`
	Email               string      `json:"email" db:"email"`
	Website             string      `json:"website" db:"website"`
	GSTNumber           string      `json:"gst_number" db:"gst_number"`
	GSTDocument         *StoredRef  `json:"gst_document" db:"gst_document"`
	ContactName         string      `json:"contact_name" db:"contact_name"`
	ContactNumber       string      `json:"contact_number" db:"contact_number"`
	BusinessLogo        *StoredRef  `json:"business_logo" db:"business_logo"`
	KYCVideo            *StoredRef  `json:"kyc_video" db:"kyc_video"`
	PrimaryLocationID   string      `json:"primary_location_id" db:"primary_location_id"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" db:"updated_at"`
}

// IsVehicleCategory reports whether cat takes vehicle types.
func IsVehicleCategory(cat string) bool {
	for _, v := range VehicleCategories {
		if v == cat {
			return true
		}
	}
	return false
}

// Locked reports whether the draft is closed to ordinary owner edits.
func (d *BusinessDraft) Locked() bool {
	return d.Status != StatusDraft && d.Status != ""
}

// BusinessPatch is a sparse update: a nil field was absent from the
// request and must not touch the stored value, a non-nil field
// overwrites it. This is what lets the basic-info, category and
// location steps update disjoint subsets of one document.
type BusinessPatch struct {
	Status              *string
	BusinessName        *string
	BusinessDescription *string
	BusinessCategory    *string
	OtherCategoryName   *string
	VehicleTypes        *[]string
	ShopType            *string
	Brands              *[]uuid.UUID
	SuggestedBrandName  *string
	SuggestedBrandLogo  *StoredRef
	BusinessType        *string
	Email               *string
	Website             *string
	GSTNumber           *string
	GSTDocument         *StoredRef
	ContactName         *string
	ContactNumber       *string
	BusinessLogo        *StoredRef

	// Location step. Locations is the complete replacement set; ids
	// missing from it are deleted server-side.
	Locations             *[]LocationInput
	PrimaryLocationID     *string
	PrimaryShopImage      *StoredRef
	PrimaryShopImageLocID *string
}

// RequestedStatus returns the status the patch asks for, or "".
func (p *BusinessPatch) RequestedStatus() string {
	if p.Status == nil {
		return ""
	}
	return *p.Status
}

// HasLocations reports whether the patch carries the location step.
func (p *BusinessPatch) HasLocations() bool {
	return p.Locations != nil
}
