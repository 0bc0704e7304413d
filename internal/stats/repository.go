package stats

import (
	"context"
	"time"

	"github.com/aqmarzaini/diecast-admin-service/internal/stats/dto"
)

type Repository interface {
	// Totals covers every purchase regardless of payment status.
	Totals(ctx context.Context) (*dto.Totals, error)
	// PaidQuantity sums quantities of paid purchases; a non-nil since
	// restricts to payment dates from that instant on.
	PaidQuantity(ctx context.Context, since *time.Time) (int, error)
	SpendSince(ctx context.Context, since time.Time) (*dto.PeriodSpend, error)
	RecentPurchases(ctx context.Context, limit int) ([]dto.RecentPurchase, error)
	BrandSpending(ctx context.Context) ([]dto.BrandSpend, error)
}
