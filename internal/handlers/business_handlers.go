package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"bizsetu/internal/common"
	"bizsetu/internal/models"
	"bizsetu/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BusinessHandlers serves the onboarding draft endpoints.
type BusinessHandlers struct {
	businessSvc services.BusinessService
	locationSvc services.LocationService
	mediaSvc    services.MediaService
}

func NewBusinessHandlers(businessSvc services.BusinessService, locationSvc services.LocationService,
	mediaSvc services.MediaService) *BusinessHandlers {
	return &BusinessHandlers{
		businessSvc: businessSvc,
		locationSvc: locationSvc,
		mediaSvc:    mediaSvc,
	}
}

// GetBusiness returns the owner's draft with unset fields normalized
// to empty strings/arrays. Logo and document objects may be null.
func (h *BusinessHandlers) GetBusiness(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, ok := common.GetOwnerIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	draft, err := h.businessSvc.GetDraft(ctx, ownerID)
	if err != nil {
		return common.SendServerError(c, "Failed to load business details")
	}
	if draft == nil {
		draft = &models.BusinessDraft{OwnerID: ownerID}
	}
	if draft.VehicleTypes == nil {
		draft.VehicleTypes = []string{}
	}
	if draft.Brands == nil {
		draft.Brands = []uuid.UUID{}
	}

	return c.JSON(http.StatusOK, draft)
}

// UpdateBusiness applies a sparse multipart update: only keys present
// in the form touch the stored document. File parts are ingested
// before any document write; one bad file fails the whole request.
func (h *BusinessHandlers) UpdateBusiness(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, ok := common.GetOwnerIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return common.SendClientError(c, "Request must be multipart form data")
	}

	patch, err := h.buildPatch(c, form)
	if err != nil {
		return h.writeError(c, err)
	}

	draft, err := h.businessSvc.ApplyPatch(ctx, ownerID, patch)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  draft.Status,
		"message": "Business details saved",
	})
}

// UploadKYCVideo attaches the verification video to a draft that is
// awaiting moderation.
func (h *BusinessHandlers) UploadKYCVideo(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, ok := common.GetOwnerIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	file, err := c.FormFile("kycVideo")
	if err != nil {
		return common.SendClientError(c, "KYC video file is required")
	}

	video, err := h.mediaSvc.Ingest(ctx, file, models.UploadKindVideo)
	if err != nil {
		return h.writeError(c, err)
	}

	if err := h.businessSvc.AttachKYCVideo(ctx, ownerID, video); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "KYC video uploaded",
	})
}

// ListLocations returns the persisted location documents.
func (h *BusinessHandlers) ListLocations(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, ok := common.GetOwnerIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	locations, err := h.locationSvc.List(ctx, ownerID)
	if err != nil {
		return common.SendServerError(c, "Failed to list business locations")
	}
	if locations == nil {
		locations = []*models.BusinessLocation{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"locations": locations,
	})
}

// buildPatch maps multipart form presence onto the sparse patch: a key
// that was sent becomes a non-nil field even when its value is empty,
// a key that was not sent stays nil and leaves the stored value alone.
func (h *BusinessHandlers) buildPatch(c echo.Context, form *multipart.Form) (*models.BusinessPatch, error) {
	patch := &models.BusinessPatch{}
	ctx := c.Request().Context()

	setString := func(key string, dst **string) {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			*dst = &v
		}
	}

	setString("status", &patch.Status)
	setString("businessName", &patch.BusinessName)
	setString("businessDescription", &patch.BusinessDescription)
	setString("businessCategory", &patch.BusinessCategory)
	setString("otherCategoryName", &patch.OtherCategoryName)
	setString("shopType", &patch.ShopType)
	setString("suggestedBrandName", &patch.SuggestedBrandName)
	setString("businessType", &patch.BusinessType)
	setString("email", &patch.Email)
	setString("website", &patch.Website)
	setString("gstNumber", &patch.GSTNumber)
	setString("contactName", &patch.ContactName)
	setString("contactNumber", &patch.ContactNumber)
	setString("primaryLocationId", &patch.PrimaryLocationID)
	setString("primaryShopImageLocationId", &patch.PrimaryShopImageLocID)

	if vals, ok := form.Value["vehicleTypes"]; ok {
		types := append([]string(nil), vals...)
		patch.VehicleTypes = &types
	}

	if vals, ok := form.Value["brands"]; ok {
		brands := make([]uuid.UUID, 0, len(vals))
		for _, v := range vals {
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, common.NewValidationError("brand id is not a valid identifier")
			}
			brands = append(brands, id)
		}
		patch.Brands = &brands
	}

	if vals, ok := form.Value["locations"]; ok && len(vals) > 0 {
		var locations []models.LocationInput
		if err := json.Unmarshal([]byte(vals[0]), &locations); err != nil {
			return nil, common.NewValidationError("locations field is not valid JSON")
		}
		patch.Locations = &locations
	}

	ingest := func(key, kind string, dst **models.StoredRef) error {
		files, ok := form.File[key]
		if !ok || len(files) == 0 {
			return nil
		}
		ref, err := h.mediaSvc.Ingest(ctx, files[0], kind)
		if err != nil {
			return err
		}
		*dst = ref
		return nil
	}

	if err := ingest("businessLogo", models.UploadKindImage, &patch.BusinessLogo); err != nil {
		return nil, err
	}
	if err := ingest("gstDocument", models.UploadKindDocument, &patch.GSTDocument); err != nil {
		return nil, err
	}
	if err := ingest("suggestedBrandLogo", models.UploadKindImage, &patch.SuggestedBrandLogo); err != nil {
		return nil, err
	}
	if err := ingest("primaryShopImage", models.UploadKindImage, &patch.PrimaryShopImage); err != nil {
		return nil, err
	}

	return patch, nil
}

func (h *BusinessHandlers) writeError(c echo.Context, err error) error {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return common.SendValidationError(c, ve.Message)
	}
	var me *common.MediaError
	if errors.As(err, &me) {
		if me.ClientFault() {
			return common.SendValidationError(c, me.Err.Error())
		}
		return c.JSON(http.StatusBadGateway, common.CreateErrorResponse("STORE_UNAVAILABLE", "File storage is unavailable"))
	}
	return common.SendServerError(c, "Request could not be completed")
}
