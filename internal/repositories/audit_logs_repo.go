package repositories

import (
	"context"
	"time"

	"bizsetu/internal/models"

	"github.com/google/uuid"
)

type AuditLogsRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.AuditLog, error)
}

type auditLogsRepo struct {
	db Database
}

func NewAuditLogsRepository(db Database) AuditLogsRepository {
	return &auditLogsRepo{db: db}
}

func (r *auditLogsRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()

	values, err := entry.NewValues.Value()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_logs (id, owner_id, entity, record_id, action, new_values, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		entry.ID, entry.OwnerID, entry.Entity, entry.RecordID, entry.Action,
		values, entry.ChangedBy, entry.CreatedAt,
	)
	return err
}

func (r *auditLogsRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.AuditLog, error) {
	query := `
		SELECT id, owner_id, entity, record_id, action, new_values, changed_by, created_at
		FROM audit_logs
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		entry := &models.AuditLog{}
		if err := rows.Scan(
			&entry.ID, &entry.OwnerID, &entry.Entity, &entry.RecordID, &entry.Action,
			&entry.NewValues, &entry.ChangedBy, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
