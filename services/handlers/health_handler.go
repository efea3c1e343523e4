package handlers

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agri-quest/agriquest_api/shared"
)

type HealthHandler struct {
	startedAt time.Time

	dbPing  func() error
	aiReady func() bool
}

func NewHealthHandler(dbPing func() error, aiReady func() bool) *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		dbPing:    dbPing,
		aiReady:   aiReady,
	}
}

// @Summary Health Check
// @Description Report service health, dependency status and uptime
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=map[string]interface{}}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	status := "healthy"
	if err := h.dbPing(); err != nil {
		dbStatus = "down"
		status = "degraded"
	}

	aiStatus := "up"
	if !h.aiReady() {
		aiStatus = "fallback"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{
		"status":    status,
		"uptime":    time.Since(h.startedAt).String(),
		"timestamp": time.Now().Unix(),
		"services": fiber.Map{
			"database": dbStatus,
			"ai":       aiStatus,
		},
		"memory": fiber.Map{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
	})
}

// @Summary Readiness Check
// @Description Report whether the service can accept traffic
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=map[string]interface{}}
// @Failure 503 {object} shared.Response
// @Router /api/v1/health/ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.dbPing(); err != nil {
		return shared.ResponseJSON(c, fiber.StatusServiceUnavailable, "Database unavailable", nil)
	}
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{
		"ready": true,
	})
}

// @Summary Service Info
// @Description Report build and runtime information
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=map[string]interface{}}
// @Router /api/v1/health/info [get]
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", fiber.Map{
		"name":       "agriquest-api",
		"version":    "1.0",
		"go_version": runtime.Version(),
		"goroutines": runtime.NumGoroutine(),
		"started_at": h.startedAt.Unix(),
		"uptime":     time.Since(h.startedAt).String(),
	})
}
