package repositories

import (
	"context"
	"testing"
	"time"

	"bizsetu/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRepo_UpsertWritesAllColumns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRepository(mock)
	now := time.Now()
	draft := &models.BusinessDraft{
		OwnerID:          uuid.New(),
		Status:           models.StatusDraft,
		BusinessName:     "City Electronics",
		BusinessCategory: "Electronics",
		ShopType:         models.ShopTypeLocal,
		Brands:           []uuid.UUID{uuid.New()},
		BusinessLogo:     &models.StoredRef{Path: "image/logo.png", PublicURL: "https://cdn.example.com/logo.png"},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	args := make([]any, 27)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	mock.ExpectExec("INSERT INTO business_drafts").
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), draft))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepo_GetByOwnerNoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRepository(mock)
	ownerID := uuid.New()

	mock.ExpectQuery("SELECT(.+)FROM business_drafts").
		WithArgs(ownerID).
		WillReturnError(pgx.ErrNoRows)

	draft, err := repo.GetByOwner(context.Background(), ownerID)

	assert.Nil(t, draft)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestBusinessRepo_SetKYCVideo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRepository(mock)
	ownerID := uuid.New()
	video := &models.StoredRef{Path: "video/v.mp4", PublicURL: "https://cdn.example.com/v.mp4"}

	mock.ExpectExec("UPDATE business_drafts").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), ownerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetKYCVideo(context.Background(), ownerID, video))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepo_CountByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBusinessRepository(mock)
	statuses := []string{models.StatusSubmitted, models.StatusPending}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM business_drafts`).
		WithArgs(statuses).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(context.Background(), statuses)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
