package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/cache"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/stats"
	"github.com/aqmarzaini/diecast-admin-service/internal/stats/dto"
)

const recentPurchaseLimit = 8

type statsUseCase struct {
	repo   stats.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewStatsUseCase(repo stats.Repository, cache *cache.RedisClient, log logger.ZapLogger) stats.UseCase {
	return &statsUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *statsUseCase) GetDashboard(ctx context.Context) (*dto.DashboardStats, error) {
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, stats.DashboardCacheKey).Result(); err == nil {
			var cached dto.DashboardStats
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	totals, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	owned, err := uc.repo.PaidQuantity(ctx, nil)
	if err != nil {
		return nil, err
	}

	startOfMonth := monthStart(time.Now())
	ownedMonth, err := uc.repo.PaidQuantity(ctx, &startOfMonth)
	if err != nil {
		return nil, err
	}

	monthSpend, err := uc.repo.SpendSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}

	recent, err := uc.repo.RecentPurchases(ctx, recentPurchaseLimit)
	if err != nil {
		return nil, err
	}

	brands, err := uc.repo.BrandSpending(ctx)
	if err != nil {
		return nil, err
	}
	if totals.TotalSpent > 0 {
		for i := range brands {
			brands[i].Percentage = brands[i].TotalSpent / totals.TotalSpent * 100
		}
	}

	result := &dto.DashboardStats{
		Totals:             *totals,
		OwnedQuantity:      owned,
		OwnedQuantityMonth: ownedMonth,
		MonthSpend:         *monthSpend,
		RecentPurchases:    recent,
		BrandSpending:      brands,
	}

	if uc.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := uc.cache.Client.Set(ctx, stats.DashboardCacheKey, data, 5*time.Minute).Err(); err != nil {
				uc.logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}

	return result, nil
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
