package models

import (
	"time"

	"github.com/google/uuid"
)

// DayHours is one weekday's opening window.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BusinessHours maps lowercase weekday names to opening windows.
type BusinessHours map[string]DayHours

// BusinessLocation is a child document of a BusinessDraft, keyed by a
// caller-supplied id. Business name/logo/category are denormalized so
// read paths that query locations directly stay self-describing.
type BusinessLocation struct {
	ID            string        `json:"id" db:"id"`
	OwnerID       uuid.UUID     `json:"owner_id" db:"owner_id"`
	FullAddress   string        `json:"full_address" db:"full_address"`
	Latitude      float64       `json:"latitude" db:"latitude"`
	Longitude     float64       `json:"longitude" db:"longitude"`
	ContactNumber string        `json:"contact_number" db:"contact_number"`
	ShopImage     *StoredRef    `json:"shop_image" db:"shop_image"`
	BusinessHours BusinessHours `json:"business_hours" db:"business_hours"`
	IsPrimary     bool          `json:"is_primary" db:"is_primary"`

	BusinessName     string `json:"business_name" db:"business_name"`
	BusinessLogoURL  string `json:"business_logo_url" db:"business_logo_url"`
	BusinessCategory string `json:"business_category" db:"business_category"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// LocationInput is the wire form of one location inside the
// `locations` multipart field (a JSON array).
type LocationInput struct {
	ID            string        `json:"id"`
	FullAddress   string        `json:"full_address"`
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
	ContactNumber string        `json:"contact_number"`
	BusinessHours BusinessHours `json:"business_hours"`
}

// LocationUpsert is one scheduled write inside a BatchPlan. IsNew
// distinguishes creates from in-place updates (createdAt stamping).
type LocationUpsert struct {
	Location *BusinessLocation
	IsNew    bool
}

// BatchPlan is the reconciler's output: the complete set of location
// writes and deletes to commit in one atomic batch.
type BatchPlan struct {
	OwnerID uuid.UUID
	Deletes []string
	Upserts []LocationUpsert
}
