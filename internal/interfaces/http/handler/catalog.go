package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mdmapp "github.com/mdm/backend/internal/application/mdm"
)

// CatalogHandler handles catalog API endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *mdmapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *mdmapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// Create godoc
// @Summary      Create a new catalog
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        request body mdm.CreateCatalogRequest true "Catalog creation request"
// @Success      201 {object} dto.Response{data=mdm.CatalogResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogs [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req mdmapp.CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil && userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	catalog, err := h.catalogService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, catalog)
}

// GetByID godoc
// @Summary      Get catalog by ID
// @Tags         catalogs
// @Produce      json
// @Param        id path string true "Catalog ID" format(uuid)
// @Success      200 {object} dto.Response{data=mdm.CatalogResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogs/{id} [get]
func (h *CatalogHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	catalogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid catalog ID format")
		return
	}

	catalog, err := h.catalogService.GetByID(c.Request.Context(), tenantID, catalogID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, catalog)
}

// List godoc
// @Summary      List catalogs
// @Tags         catalogs
// @Produce      json
// @Param        search query string false "Search term"
// @Param        region_id query string false "Region ID" format(uuid)
// @Param        channel_id query string false "Channel ID" format(uuid)
// @Param        status query string false "Catalog status" Enums(draft, active, archived)
// @Success      200 {object} dto.Response{data=[]mdm.CatalogResponse}
// @Security     BearerAuth
// @Router       /catalogs [get]
func (h *CatalogHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter mdmapp.CatalogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.catalogService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}

// Update godoc
// @Summary      Update a catalog
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        id path string true "Catalog ID" format(uuid)
// @Param        request body mdm.UpdateCatalogRequest true "Catalog update request"
// @Success      200 {object} dto.Response{data=mdm.CatalogResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogs/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	catalogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid catalog ID format")
		return
	}

	var req mdmapp.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil && userID != uuid.Nil {
		req.UpdatedBy = &userID
	}

	catalog, err := h.catalogService.Update(c.Request.Context(), tenantID, catalogID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, catalog)
}

// Delete godoc
// @Summary      Delete a catalog
// @Tags         catalogs
// @Produce      json
// @Param        id path string true "Catalog ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogs/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	catalogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid catalog ID format")
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), tenantID, catalogID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Channels godoc
// @Summary      List sales channels
// @Tags         catalogs
// @Produce      json
// @Success      200 {object} dto.Response{data=[]mdm.ChannelResponse}
// @Security     BearerAuth
// @Router       /catalogs/channels [get]
func (h *CatalogHandler) Channels(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	channels, err := h.catalogService.Channels(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, channels)
}

// Regions godoc
// @Summary      List regions referenced by catalogs
// @Tags         catalogs
// @Produce      json
// @Success      200 {object} dto.Response{data=[]mdm.RegionRefResponse}
// @Security     BearerAuth
// @Router       /catalogs/regions [get]
func (h *CatalogHandler) Regions(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	regions, err := h.catalogService.Regions(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, regions)
}
