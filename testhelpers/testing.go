package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"bizsetu/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for testing
func SetupTestDB(t *testing.T, connString string) *TestDB {
	t.Helper()

	if connString == "" {
		connString = os.Getenv("TEST_DATABASE_URL")
		if connString == "" {
			connString = "host=localhost port=5432 user=postgres password=postgres dbname=bizsetu_test sslmode=disable"
		}
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// SetupTestDraft inserts a minimal draft row for an owner so location
// and KYC tests have a parent document to work against.
func SetupTestDraft(t *testing.T, db *TestDB, status string) uuid.UUID {
	t.Helper()

	ownerID := uuid.New()
	query := `
		INSERT INTO business_drafts (owner_id, status, business_name, business_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		ownerID, status, "Test Business", models.BusinessTypeOffline, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test draft: %v", err)
	}

	return ownerID
}

// SetupTestBrand inserts an active catalog brand of the given kind.
func SetupTestBrand(t *testing.T, db *TestDB, kind string) uuid.UUID {
	t.Helper()

	brandID := uuid.New()
	query := `
		INSERT INTO brands (id, name, kind, active, created_at)
		VALUES ($1, $2, $3, true, $4)
	`
	_, err := db.Pool.Exec(context.Background(), query, brandID, "Test Brand", kind, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test brand: %v", err)
	}

	return brandID
}

// SetupTestLocation inserts one location row for an owner.
func SetupTestLocation(t *testing.T, db *TestDB, ownerID uuid.UUID, id string, isPrimary bool) {
	t.Helper()

	query := `
		INSERT INTO business_locations (id, owner_id, full_address, latitude, longitude, is_primary, business_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		id, ownerID, "12 MG Road, Pune", 18.52, 73.85, isPrimary, "Test Business", time.Now())
	if err != nil {
		t.Fatalf("Failed to create test location: %v", err)
	}
}

// CleanupOwnerData removes every row the tests created for an owner.
func CleanupOwnerData(t *testing.T, db *TestDB, ownerID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	for _, query := range []string{
		`DELETE FROM audit_logs WHERE owner_id = $1`,
		`DELETE FROM business_locations WHERE owner_id = $1`,
		`DELETE FROM business_drafts WHERE owner_id = $1`,
	} {
		if _, err := db.Pool.Exec(ctx, query, ownerID); err != nil {
			t.Logf("cleanup failed for owner %s: %v", ownerID, err)
		}
	}
}
