package dto

import (
	"github.com/spec-kit/equipment-support/internal/service"
)

// DashboardStatsResponse carries the polled dashboard counters.
type DashboardStatsResponse struct {
	ActiveRequests  int    `json:"activeRequests"`
	UrgentRequests  int    `json:"urgentRequests"`
	AvailableTechs  int    `json:"availableTechs"`
	TotalTechs      int    `json:"totalTechs"`
	AvgResponseTime string `json:"avgResponseTime"`
}

// NewDashboardStatsResponse maps computed stats.
func NewDashboardStatsResponse(stats *service.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		ActiveRequests:  stats.ActiveRequests,
		UrgentRequests:  stats.UrgentRequests,
		AvailableTechs:  stats.AvailableTechs,
		TotalTechs:      stats.TotalTechs,
		AvgResponseTime: stats.AvgResponseTime,
	}
}
