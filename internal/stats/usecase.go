package stats

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/stats/dto"
)

// DashboardCacheKey is deleted by the purchase save flow whenever the
// underlying numbers change.
const DashboardCacheKey = "stats:dashboard"

type UseCase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardStats, error)
}
