package handlers

import (
	"net/http"

	"bizsetu/internal/models"
	"bizsetu/internal/services"

	"github.com/labstack/echo/v4"
)

// BrandHandlers serves the read-only brand catalog.
type BrandHandlers struct {
	brandSvc services.BrandService
}

func NewBrandHandlers(brandSvc services.BrandService) *BrandHandlers {
	return &BrandHandlers{brandSvc: brandSvc}
}

// ListBrands returns the active shop brand catalog.
func (h *BrandHandlers) ListBrands(c echo.Context) error {
	return h.list(c, models.BrandKindShop)
}

// ListVehicleBrands returns the active vehicle brand catalog.
func (h *BrandHandlers) ListVehicleBrands(c echo.Context) error {
	return h.list(c, models.BrandKindVehicle)
}

func (h *BrandHandlers) list(c echo.Context, kind string) error {
	brands, err := h.brandSvc.ListActive(c.Request().Context(), kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list brands")
	}
	if brands == nil {
		brands = []*models.Brand{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"brands": brands,
	})
}
