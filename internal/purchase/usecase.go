package purchase

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase/dto"
)

type UseCase interface {
	// CreatePurchase resolves the collection and shop, writes the purchase
	// with its computed total, then reconciles the owned-item ledger. A
	// ledger failure is reported in the result's SyncWarning, not as an
	// error.
	CreatePurchase(ctx context.Context, input *dto.SavePurchaseInput) (*dto.SaveResult, error)
	// UpdatePurchase behaves like CreatePurchase but diffs the payment
	// status against the stored row to drive the ledger transition.
	UpdatePurchase(ctx context.Context, input *dto.UpdatePurchaseInput) (*dto.SaveResult, error)

	GetPurchase(ctx context.Context, id string) (*model.Purchase, error)
	ListPurchases(ctx context.Context) ([]model.Purchase, error)
}

// EventPublisher receives a best-effort notification after every
// successful save.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
