package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equipment-support/internal/api/dto"
	"github.com/spec-kit/equipment-support/internal/service"
)

// StatsHandler serves aggregated dashboard counters.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// Get GET /api/dashboard-stats.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.service.ComputeStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDashboardStatsResponse(stats)})
}
