package handler

import (
	"github.com/gin-gonic/gin"

	dictapp "github.com/mdm/backend/internal/application/dictionary"
)

// DataDictionaryHandler serves the read-only field metadata endpoints
type DataDictionaryHandler struct {
	BaseHandler
	service *dictapp.Service
}

// NewDataDictionaryHandler creates a new DataDictionaryHandler
func NewDataDictionaryHandler(service *dictapp.Service) *DataDictionaryHandler {
	return &DataDictionaryHandler{
		service: service,
	}
}

// List godoc
// @Summary      List data dictionary entries
// @Tags         data-dictionary
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        maintenance_role query string false "Maintenance role filter"
// @Param        schema query string false "Schema presence" Enums(product, catalog, pricing)
// @Param        required_only query bool false "Only entries required for activation"
// @Param        search query string false "Search over column name, display name, description"
// @Success      200 {object} dto.Response{data=[]dictionary.EntryResponse}
// @Security     BearerAuth
// @Router       /data-dictionary [get]
func (h *DataDictionaryHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter dictapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// Categories godoc
// @Summary      Distinct dictionary categories
// @Tags         data-dictionary
// @Produce      json
// @Success      200 {object} dto.Response{data=[]string}
// @Security     BearerAuth
// @Router       /data-dictionary/categories [get]
func (h *DataDictionaryHandler) Categories(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	categories, err := h.service.Categories(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, categories)
}

// ValidationRules godoc
// @Summary      Per-column validation rules
// @Tags         data-dictionary
// @Produce      json
// @Success      200 {object} dto.Response{data=map[string]dictionary.ValidationRule}
// @Security     BearerAuth
// @Router       /data-dictionary/validation-rules [get]
func (h *DataDictionaryHandler) ValidationRules(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	rules, err := h.service.ValidationRules(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rules)
}
