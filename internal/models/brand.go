package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand catalog kinds.
const (
	BrandKindShop    = "shop"
	BrandKindVehicle = "vehicle"
)

// Brand is a read-only catalog entry referenced by drafts. The catalog
// is owned elsewhere; this service only checks existence and active
// status.
type Brand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	LogoURL   string    `json:"logo_url" db:"logo_url"`
	Kind      string    `json:"kind" db:"kind"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
