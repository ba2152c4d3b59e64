package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and service metadata endpoints
type SystemHandler struct {
	BaseHandler
	version   string
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startedAt: time.Now(),
	}
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /health [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"status": "ok"})
}

// Info godoc
// @Summary      Service metadata
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /system/info [get]
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, gin.H{
		"name":       "MDM Backend API",
		"version":    h.version,
		"go_version": runtime.Version(),
		"uptime":     time.Since(h.startedAt).String(),
	})
}
