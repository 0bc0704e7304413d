package purchase

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	FindByID(ctx context.Context, id string) (*model.Purchase, error)
	FindAll(ctx context.Context) ([]model.Purchase, error)
	Update(ctx context.Context, purchase *model.Purchase) error
}

// DetailRepository manages the derived collection_detail ledger. purchase_id
// is unique there, so the ByPurchaseID operations address at most one row.
type DetailRepository interface {
	Insert(ctx context.Context, detail *model.CollectionDetail) error
	FindByPurchaseID(ctx context.Context, purchaseID string) (*model.CollectionDetail, error)
	UpdateByPurchaseID(ctx context.Context, detail *model.CollectionDetail) error
	DeleteByPurchaseID(ctx context.Context, purchaseID string) error
}
