package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mdmapp "github.com/mdm/backend/internal/application/mdm"
)

// CatalogProductHandler handles catalog entry API endpoints
type CatalogProductHandler struct {
	BaseHandler
	service *mdmapp.CatalogProductService
}

// NewCatalogProductHandler creates a new CatalogProductHandler
func NewCatalogProductHandler(service *mdmapp.CatalogProductService) *CatalogProductHandler {
	return &CatalogProductHandler{
		service: service,
	}
}

// parseCompositeKey extracts the catalogId/productId pair from the path
func (h *CatalogProductHandler) parseCompositeKey(c *gin.Context) (catalogID, productID uuid.UUID, ok bool) {
	catalogID, err := uuid.Parse(c.Param("catalogId"))
	if err != nil {
		h.BadRequest(c, "Invalid catalog ID format")
		return uuid.Nil, uuid.Nil, false
	}
	productID, err = uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return catalogID, productID, true
}

// Add godoc
// @Summary      Add a product to a catalog
// @Tags         catalog-products
// @Accept       json
// @Produce      json
// @Param        request body mdm.AddCatalogProductRequest true "Catalog entry request"
// @Success      201 {object} dto.Response{data=mdm.CatalogProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogproduct [post]
func (h *CatalogProductHandler) Add(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req mdmapp.AddCatalogProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil && userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	entry, err := h.service.Add(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// Update godoc
// @Summary      Update a catalog entry
// @Tags         catalog-products
// @Accept       json
// @Produce      json
// @Param        catalogId path string true "Catalog ID" format(uuid)
// @Param        productId path string true "Product ID" format(uuid)
// @Param        request body mdm.UpdateCatalogProductRequest true "Catalog entry update"
// @Success      200 {object} dto.Response{data=mdm.CatalogProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogproduct/{catalogId}/{productId} [put]
func (h *CatalogProductHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	catalogID, productID, ok := h.parseCompositeKey(c)
	if !ok {
		return
	}

	var req mdmapp.UpdateCatalogProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if userID, err := getUserID(c); err == nil && userID != uuid.Nil {
		req.UpdatedBy = &userID
	}

	entry, err := h.service.Update(c.Request.Context(), tenantID, catalogID, productID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Remove godoc
// @Summary      Remove a product from a catalog
// @Tags         catalog-products
// @Produce      json
// @Param        catalogId path string true "Catalog ID" format(uuid)
// @Param        productId path string true "Product ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogproduct/{catalogId}/{productId} [delete]
func (h *CatalogProductHandler) Remove(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	catalogID, productID, ok := h.parseCompositeKey(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), tenantID, catalogID, productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListByCatalog godoc
// @Summary      List catalog entries with live product data
// @Tags         catalog-products
// @Produce      json
// @Param        catalogId path string true "Catalog ID" format(uuid)
// @Param        search query string false "Search over product name and SKU"
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]mdm.CatalogProductListingResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogproduct/catalog/{catalogId} [get]
func (h *CatalogProductHandler) ListByCatalog(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	catalogID, err := uuid.Parse(c.Param("catalogId"))
	if err != nil {
		h.BadRequest(c, "Invalid catalog ID format")
		return
	}

	var filter mdmapp.CatalogProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ListByCatalog(c.Request.Context(), tenantID, catalogID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, result)
}
