package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	opRepo "ashwini/database/repository/op"
	"ashwini/models"
	"ashwini/utils"
)

// DashboardService computes the live per-day status counts.
type DashboardService interface {
	Counts(ctx context.Context) (*models.DashboardCounts, error)
}

// DefaultDashboardService is the production implementation. Cache is
// optional: when nil every call hits the store.
type DefaultDashboardService struct {
	Repo  opRepo.OPRepository
	Cache *redis.Client
}

// Counts aggregates today's bookings per status bucket. Results are cached
// briefly per day so a dashboard polling loop does not hammer the store.
func (s *DefaultDashboardService) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	today := time.Now().Format(models.DateLayout)
	cacheKey := utils.DashboardCachePrefix + today

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var counts models.DashboardCounts
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				return &counts, nil
			}
		}
	}

	total, err := s.Repo.CountByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's bookings: %w", err)
	}
	opCount, err := s.Repo.CountByDate(ctx, today, models.StatusPending, models.StatusDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to count waiting bookings: %w", err)
	}
	reportCount, err := s.Repo.CountByDate(ctx, today, models.StatusReport)
	if err != nil {
		return nil, fmt.Errorf("failed to count report bookings: %w", err)
	}
	completedCount, err := s.Repo.CountByDate(ctx, today, models.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed bookings: %w", err)
	}

	counts := &models.DashboardCounts{
		OPCount:        opCount,
		ReportCount:    reportCount,
		CompletedCount: completedCount,
		TotalCount:     total,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(counts); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.DashboardCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache dashboard counts", zap.Error(err))
			}
		}
	}
	return counts, nil
}
