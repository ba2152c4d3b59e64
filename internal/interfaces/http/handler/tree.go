package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	geoapp "github.com/mdm/backend/internal/application/geo"
)

// TreeHandler serves the region/country/locale hierarchy endpoints
type TreeHandler struct {
	BaseHandler
	treeService *geoapp.TreeService
}

// NewTreeHandler creates a new TreeHandler
func NewTreeHandler(treeService *geoapp.TreeService) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
	}
}

// Tree godoc
// @Summary      Full geographic tree
// @Description  Nested region > country > locale tree. includeCompliance=true
// @Description  annotates country nodes with trade-compliance screening.
// @Tags         tree
// @Produce      json
// @Param        includeCompliance query bool false "Annotate countries with compliance data"
// @Success      200 {object} dto.Response{data=[]geo.TreeNode}
// @Security     BearerAuth
// @Router       /tree [get]
func (h *TreeHandler) Tree(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	includeCompliance, _ := strconv.ParseBool(c.Query("includeCompliance"))

	tree, err := h.treeService.Tree(c.Request.Context(), tenantID, includeCompliance)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tree)
}

// CreateNode godoc
// @Summary      Create a tree node
// @Tags         tree
// @Accept       json
// @Produce      json
// @Param        request body geo.CreateNodeRequest true "Node creation request"
// @Success      201 {object} dto.Response{data=geo.TreeNode}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tree/nodes [post]
func (h *TreeHandler) CreateNode(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req geoapp.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	node, err := h.treeService.CreateNode(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, node)
}

// DeleteNode godoc
// @Summary      Delete a tree node
// @Description  Primary locales and nodes with children cannot be deleted.
// @Tags         tree
// @Produce      json
// @Param        id path string true "Node ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tree/nodes/{id} [delete]
func (h *TreeHandler) DeleteNode(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	nodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid node ID format")
		return
	}

	if err := h.treeService.DeleteNode(c.Request.Context(), tenantID, nodeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
