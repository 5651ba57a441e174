package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JSONB wraps arbitrary JSON payloads stored in jsonb columns.
type JSONB map[string]interface{}

// Value returns the marshalled form for database writes.
func (j JSONB) Value() ([]byte, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// AuditLog records one accepted write against the onboarding data.
type AuditLog struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	OwnerID   uuid.UUID  `json:"owner_id" db:"owner_id"`
	Entity    string     `json:"entity" db:"entity"`
	RecordID  string     `json:"record_id" db:"record_id"`
	Action    string     `json:"action" db:"action"`
	NewValues JSONB      `json:"new_values" db:"new_values"`
	ChangedBy *uuid.UUID `json:"changed_by" db:"changed_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Action constants for audit logs
const (
	ActionInsert       = "INSERT"
	ActionUpdate       = "UPDATE"
	ActionDelete       = "DELETE"
	ActionStatusChange = "STATUS_CHANGE"
)

// Audited entities.
const (
	EntityBusiness = "business_drafts"
	EntityLocation = "business_locations"
)
