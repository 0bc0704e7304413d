package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/stats/dto"
)

type fakeStatsRepo struct {
	totals      dto.Totals
	paidAll     int
	paidSince   int
	monthSpend  dto.PeriodSpend
	recent      []dto.RecentPurchase
	brands      []dto.BrandSpend
	totalsErr   error
	totalsCalls int
}

func (f *fakeStatsRepo) Totals(_ context.Context) (*dto.Totals, error) {
	f.totalsCalls++
	if f.totalsErr != nil {
		return nil, f.totalsErr
	}
	t := f.totals
	return &t, nil
}

func (f *fakeStatsRepo) PaidQuantity(_ context.Context, since *time.Time) (int, error) {
	if since != nil {
		return f.paidSince, nil
	}
	return f.paidAll, nil
}

func (f *fakeStatsRepo) SpendSince(_ context.Context, _ time.Time) (*dto.PeriodSpend, error) {
	s := f.monthSpend
	return &s, nil
}

func (f *fakeStatsRepo) RecentPurchases(_ context.Context, limit int) ([]dto.RecentPurchase, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeStatsRepo) BrandSpending(_ context.Context) ([]dto.BrandSpend, error) {
	return f.brands, nil
}

func TestGetDashboardComputesBrandPercentages(t *testing.T) {
	repo := &fakeStatsRepo{
		totals:  dto.Totals{TotalSpent: 200, PurchaseCount: 10},
		paidAll: 7,
		brands: []dto.BrandSpend{
			{BrandID: 1, BrandName: "Hot Wheels", TotalSpent: 150},
			{BrandID: 2, BrandName: "Tomica", TotalSpent: 50},
		},
	}
	uc := NewStatsUseCase(repo, nil, logger.NewNop())

	result, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, result.BrandSpending, 2)
	assert.InDelta(t, 75.0, result.BrandSpending[0].Percentage, 1e-9)
	assert.InDelta(t, 25.0, result.BrandSpending[1].Percentage, 1e-9)
	assert.Equal(t, 7, result.OwnedQuantity)
}

func TestGetDashboardZeroSpendLeavesPercentagesZero(t *testing.T) {
	repo := &fakeStatsRepo{
		brands: []dto.BrandSpend{{BrandID: 1, BrandName: "Tomica"}},
	}
	uc := NewStatsUseCase(repo, nil, logger.NewNop())

	result, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.BrandSpending[0].Percentage)
}

func TestGetDashboardWithoutCacheHitsStoreEachTime(t *testing.T) {
	repo := &fakeStatsRepo{}
	uc := NewStatsUseCase(repo, nil, logger.NewNop())
	ctx := context.Background()

	_, err := uc.GetDashboard(ctx)
	require.NoError(t, err)
	_, err = uc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.totalsCalls)
}

func TestGetDashboardPropagatesStoreError(t *testing.T) {
	repo := &fakeStatsRepo{totalsErr: errors.New("query failed")}
	uc := NewStatsUseCase(repo, nil, logger.NewNop())

	_, err := uc.GetDashboard(context.Background())
	assert.Error(t, err)
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2025, time.March, 17, 14, 30, 0, 0, time.UTC)
	start := monthStart(now)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
}
