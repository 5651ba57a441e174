package repositories

import (
	"context"
	"encoding/json"

	"bizsetu/internal/models"

	"github.com/google/uuid"
)

type LocationRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error)
	// Apply commits every delete and upsert in the plan inside one
	// transaction; on any failure the previous location set is intact.
	Apply(ctx context.Context, plan *models.BatchPlan) error
}

type locationRepo struct {
	db Database
}

func NewLocationRepository(db Database) LocationRepository {
	return &locationRepo{db: db}
}

const locationColumns = `
	id, owner_id, full_address, latitude, longitude, contact_number,
	shop_image_path, shop_image_url, business_hours, is_primary,
	business_name, business_logo_url, business_category, created_at, updated_at`

func (r *locationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error) {
	query := `SELECT` + locationColumns + `
		FROM business_locations
		WHERE owner_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.BusinessLocation
	for rows.Next() {
		loc := &models.BusinessLocation{}
		var imagePath, imageURL *string
		var hours []byte
		if err := rows.Scan(
			&loc.ID, &loc.OwnerID, &loc.FullAddress, &loc.Latitude, &loc.Longitude, &loc.ContactNumber,
			&imagePath, &imageURL, &hours, &loc.IsPrimary,
			&loc.BusinessName, &loc.BusinessLogoURL, &loc.BusinessCategory, &loc.CreatedAt, &loc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		loc.ShopImage = refFromColumns(imagePath, imageURL)
		if len(hours) > 0 {
			if err := json.Unmarshal(hours, &loc.BusinessHours); err != nil {
				return nil, err
			}
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

const upsertLocationQuery = `
	INSERT INTO business_locations (` + locationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (owner_id, id) DO UPDATE SET
		full_address = EXCLUDED.full_address,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		contact_number = EXCLUDED.contact_number,
		shop_image_path = EXCLUDED.shop_image_path,
		shop_image_url = EXCLUDED.shop_image_url,
		business_hours = EXCLUDED.business_hours,
		is_primary = EXCLUDED.is_primary,
		business_name = EXCLUDED.business_name,
		business_logo_url = EXCLUDED.business_logo_url,
		business_category = EXCLUDED.business_category,
		updated_at = EXCLUDED.updated_at
`

func (r *locationRepo) Apply(ctx context.Context, plan *models.BatchPlan) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, id := range plan.Deletes {
		if _, err := tx.Exec(ctx,
			`DELETE FROM business_locations WHERE owner_id = $1 AND id = $2`,
			plan.OwnerID, id,
		); err != nil {
			return err
		}
	}

	for _, up := range plan.Upserts {
		loc := up.Location
		hours, err := json.Marshal(loc.BusinessHours)
		if err != nil {
			return err
		}
		imagePath, imageURL := columnsFromRef(loc.ShopImage)
		if _, err := tx.Exec(ctx, upsertLocationQuery,
			loc.ID, loc.OwnerID, loc.FullAddress, loc.Latitude, loc.Longitude, loc.ContactNumber,
			imagePath, imageURL, hours, loc.IsPrimary,
			loc.BusinessName, loc.BusinessLogoURL, loc.BusinessCategory, loc.CreatedAt, loc.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
