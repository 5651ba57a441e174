package repositories

import (
	"context"

	"bizsetu/internal/models"

	"github.com/google/uuid"
)

type BusinessRepository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error)
	Upsert(ctx context.Context, draft *models.BusinessDraft) error
	SetKYCVideo(ctx context.Context, ownerID uuid.UUID, video *models.StoredRef) error
	CountByStatus(ctx context.Context, statuses []string) (int, error)
}

type businessRepo struct {
	db Database
}

func NewBusinessRepository(db Database) BusinessRepository {
	return &businessRepo{db: db}
}

const businessColumns = `
	owner_id, status, business_name, business_description, business_category,
	other_category_name, vehicle_types, shop_type, brands,
	suggested_brand_name, suggested_brand_logo_path, suggested_brand_logo_url,
	business_type, email, website, gst_number, gst_document_path, gst_document_url,
	contact_name, contact_number, business_logo_path, business_logo_url,
	kyc_video_path, kyc_video_url, primary_location_id, created_at, updated_at`

func (r *businessRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error) {
	query := `SELECT` + businessColumns + `
		FROM business_drafts
		WHERE owner_id = $1`

	d := &models.BusinessDraft{}
	var suggestedLogoPath, suggestedLogoURL *string
	var gstDocPath, gstDocURL *string
	var logoPath, logoURL *string
	var kycPath, kycURL *string

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&d.OwnerID, &d.Status, &d.BusinessName, &d.BusinessDescription, &d.BusinessCategory,
		&d.OtherCategoryName, &d.VehicleTypes, &d.ShopType, &d.Brands,
		&d.SuggestedBrandName, &suggestedLogoPath, &suggestedLogoURL,
		&d.BusinessType, &d.Email, &d.Website, &d.GSTNumber, &gstDocPath, &gstDocURL,
		&d.ContactName, &d.ContactNumber, &logoPath, &logoURL,
		&kycPath, &kycURL, &d.PrimaryLocationID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.SuggestedBrandLogo = refFromColumns(suggestedLogoPath, suggestedLogoURL)
	d.GSTDocument = refFromColumns(gstDocPath, gstDocURL)
	d.BusinessLogo = refFromColumns(logoPath, logoURL)
	d.KYCVideo = refFromColumns(kycPath, kycURL)
	return d, nil
}

func (r *businessRepo) Upsert(ctx context.Context, d *models.BusinessDraft) error {
	query := `
		INSERT INTO business_drafts (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		ON CONFLICT (owner_id) DO UPDATE SET
			status = EXCLUDED.status,
			business_name = EXCLUDED.business_name,
			business_description = EXCLUDED.business_description,
			business_category = EXCLUDED.business_category,
			other_category_name = EXCLUDED.other_category_name,
			vehicle_types = EXCLUDED.vehicle_types,
			shop_type = EXCLUDED.shop_type,
			brands = EXCLUDED.brands,
			suggested_brand_name = EXCLUDED.suggested_brand_name,
			suggested_brand_logo_path = EXCLUDED.suggested_brand_logo_path,
			suggested_brand_logo_url = EXCLUDED.suggested_brand_logo_url,
			business_type = EXCLUDED.business_type,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			gst_number = EXCLUDED.gst_number,
			gst_document_path = EXCLUDED.gst_document_path,
			gst_document_url = EXCLUDED.gst_document_url,
			contact_name = EXCLUDED.contact_name,
			contact_number = EXCLUDED.contact_number,
			business_logo_path = EXCLUDED.business_logo_path,
			business_logo_url = EXCLUDED.business_logo_url,
			kyc_video_path = EXCLUDED.kyc_video_path,
			kyc_video_url = EXCLUDED.kyc_video_url,
			primary_location_id = EXCLUDED.primary_location_id,
			updated_at = EXCLUDED.updated_at
	`
	sp, su := columnsFromRef(d.SuggestedBrandLogo)
	gp, gu := columnsFromRef(d.GSTDocument)
	lp, lu := columnsFromRef(d.BusinessLogo)
	kp, ku := columnsFromRef(d.KYCVideo)

	_, err := r.db.Exec(ctx, query,
		d.OwnerID, d.Status, d.BusinessName, d.BusinessDescription, d.BusinessCategory,
		d.OtherCategoryName, d.VehicleTypes, d.ShopType, d.Brands,
		d.SuggestedBrandName, sp, su,
		d.BusinessType, d.Email, d.Website, d.GSTNumber, gp, gu,
		d.ContactName, d.ContactNumber, lp, lu,
		kp, ku, d.PrimaryLocationID, d.CreatedAt, d.UpdatedAt,
	)
	return err
}

func (r *businessRepo) SetKYCVideo(ctx context.Context, ownerID uuid.UUID, video *models.StoredRef) error {
	query := `
		UPDATE business_drafts
		SET kyc_video_path = $1, kyc_video_url = $2, updated_at = NOW()
		WHERE owner_id = $3
	`
	kp, ku := columnsFromRef(video)
	_, err := r.db.Exec(ctx, query, kp, ku, ownerID)
	return err
}

func (r *businessRepo) CountByStatus(ctx context.Context, statuses []string) (int, error) {
	query := `SELECT COUNT(*) FROM business_drafts WHERE status = ANY($1)`
	var count int
	if err := r.db.QueryRow(ctx, query, statuses).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func refFromColumns(path, url *string) *models.StoredRef {
	if path == nil || url == nil {
		return nil
	}
	return &models.StoredRef{Path: *path, PublicURL: *url}
}

func columnsFromRef(ref *models.StoredRef) (*string, *string) {
	if ref == nil {
		return nil, nil
	}
	return &ref.Path, &ref.PublicURL
}
