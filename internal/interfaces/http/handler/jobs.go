package handler

import (
	"github.com/gin-gonic/gin"

	jobsapp "github.com/mdm/backend/internal/application/jobs"
)

var validJobWindows = map[string]bool{
	"1h":  true,
	"24h": true,
	"7d":  true,
	"30d": true,
}

// JobsHandler serves the catalog management job monitoring endpoints
type JobsHandler struct {
	BaseHandler
	service *jobsapp.MonitorService
}

// NewJobsHandler creates a new JobsHandler
func NewJobsHandler(service *jobsapp.MonitorService) *JobsHandler {
	return &JobsHandler{
		service: service,
	}
}

// Jobs godoc
// @Summary      List background jobs
// @Description  Background jobs started within the requested time window,
// @Description  newest first.
// @Tags         jobs
// @Produce      json
// @Param        window query string false "Time window" Enums(1h, 24h, 7d, 30d) default(24h)
// @Success      200 {object} dto.Response{data=[]jobs.BackgroundJobResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalogmanagement/jobs [get]
func (h *JobsHandler) Jobs(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	window := c.DefaultQuery("window", "24h")
	if !validJobWindows[window] {
		h.BadRequest(c, "Invalid window, must be one of: 1h, 24h, 7d, 30d")
		return
	}

	jobs, err := h.service.ListBackground(c.Request.Context(), tenantID, window)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, jobs)
}

// WorkflowJobs godoc
// @Summary      List workflow jobs
// @Tags         jobs
// @Produce      json
// @Success      200 {object} dto.Response{data=[]jobs.WorkflowJobResponse}
// @Security     BearerAuth
// @Router       /catalogmanagement/workflow-jobs [get]
func (h *JobsHandler) WorkflowJobs(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	jobs, err := h.service.ListWorkflows(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, jobs)
}

// Stats godoc
// @Summary      Aggregate job counts by status
// @Tags         jobs
// @Produce      json
// @Success      200 {object} dto.Response{data=jobs.Stats}
// @Security     BearerAuth
// @Router       /catalogmanagement/jobs/stats [get]
func (h *JobsHandler) Stats(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}
