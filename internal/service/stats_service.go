package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/repository"
	apperrors "github.com/spec-kit/equipment-support/pkg/util"
)

// placeholderAvgResponse is reported until at least one request has been
// resolved, matching the dashboard's historical fixed display value.
const placeholderAvgResponse = "4.2min"

// DashboardStats holds the counters polled by the dashboard.
type DashboardStats struct {
	ActiveRequests  int
	UrgentRequests  int
	AvailableTechs  int
	TotalTechs      int
	AvgResponseTime string
}

// StatsService derives dashboard counters from current store contents. All
// counts are recomputed fully on every call; fine at this data scale.
type StatsService struct {
	requests    repository.RequestRepository
	technicians repository.TechnicianRepository
}

// NewStatsService constructs the service.
func NewStatsService(requests repository.RequestRepository, technicians repository.TechnicianRepository) *StatsService {
	return &StatsService{requests: requests, technicians: technicians}
}

// ComputeStats recalculates all dashboard counters.
func (s *StatsService) ComputeStats(ctx context.Context) (*DashboardStats, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	technicians, err := s.technicians.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	stats := &DashboardStats{TotalTechs: len(technicians)}

	var resolvedCount int
	var resolvedTotal time.Duration
	for _, req := range requests {
		if req.Status.Active() {
			stats.ActiveRequests++
		}
		if req.Priority == domain.RequestPriorityHigh && req.Status.Active() {
			stats.UrgentRequests++
		}
		if req.Status == domain.RequestStatusResolved || req.Status == domain.RequestStatusClosed {
			resolvedCount++
			resolvedTotal += req.UpdatedAt.Sub(req.CreatedAt)
		}
	}

	for _, tech := range technicians {
		if tech.Status == domain.TechnicianStatusAvailable {
			stats.AvailableTechs++
		}
	}

	stats.AvgResponseTime = formatAvgResponse(resolvedCount, resolvedTotal)
	return stats, nil
}

func formatAvgResponse(count int, total time.Duration) string {
	if count == 0 {
		return placeholderAvgResponse
	}
	avg := total / time.Duration(count)
	return fmt.Sprintf("%.1fmin", avg.Minutes())
}
