package repositories

import (
	"context"

	"bizsetu/internal/models"

	"github.com/google/uuid"
)

type BrandRepository interface {
	ListActive(ctx context.Context, kind string) ([]*models.Brand, error)
	// ActiveIDs bulk-resolves catalog ids; absent or inactive ids are
	// simply missing from the returned set.
	ActiveIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type brandRepo struct {
	db Database
}

func NewBrandRepository(db Database) BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) ListActive(ctx context.Context, kind string) ([]*models.Brand, error) {
	query := `
		SELECT id, name, logo_url, kind, active, created_at, updated_at
		FROM brands
		WHERE kind = $1 AND active = TRUE
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*models.Brand
	for rows.Next() {
		b := &models.Brand{}
		if err := rows.Scan(&b.ID, &b.Name, &b.LogoURL, &b.Kind, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *brandRepo) ActiveIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]bool{}, nil
	}
	query := `SELECT id FROM brands WHERE id = ANY($1) AND active = TRUE`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	active := make(map[uuid.UUID]bool, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		active[id] = true
	}
	return active, rows.Err()
}
