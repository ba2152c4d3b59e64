package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	geoapp "github.com/mdm/backend/internal/application/geo"
	"github.com/mdm/backend/internal/domain/shared"
)

// ComplianceHandler proxies trade-compliance screening requests
type ComplianceHandler struct {
	BaseHandler
	treeService *geoapp.TreeService
}

// NewComplianceHandler creates a new ComplianceHandler
func NewComplianceHandler(treeService *geoapp.TreeService) *ComplianceHandler {
	return &ComplianceHandler{
		treeService: treeService,
	}
}

// handleError maps collaborator failures to 503. Domain errors keep
// their own status.
func (h *ComplianceHandler) handleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.HandleDomainError(c, err)
		return
	}
	h.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Compliance service unavailable")
}

// ScreenCountry godoc
// @Summary      Screen a country code against the compliance service
// @Tags         compliance
// @Produce      json
// @Param        code path string true "ISO country code"
// @Success      200 {object} dto.Response{data=geo.CountryScreening}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /compliance/screen/country/{code} [get]
func (h *ComplianceHandler) ScreenCountry(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Country code is required")
		return
	}

	screening, err := h.treeService.ScreenCountry(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.Success(c, screening)
}

// AssessRegion godoc
// @Summary      Assess a region against the compliance service
// @Tags         compliance
// @Produce      json
// @Param        code path string true "Region code"
// @Success      200 {object} dto.Response{data=geo.RegionAssessment}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /compliance/assess/region/{code} [get]
func (h *ComplianceHandler) AssessRegion(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Region code is required")
		return
	}

	assessment, err := h.treeService.AssessRegion(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.Success(c, assessment)
}
