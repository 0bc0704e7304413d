package shop

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop/dto"
)

type UseCase interface {
	// ResolveOrCreate returns the id of the shop matching the normalized
	// (name, address, country) triple, creating the row if none exists.
	// A fully-blank triple resolves to nil without touching the store.
	ResolveOrCreate(ctx context.Context, input *dto.ResolveShopInput) (*string, error)

	ListShops(ctx context.Context) ([]model.Shop, error)
	UpdateShop(ctx context.Context, input *dto.UpdateShopInput) (*model.Shop, error)
	DeleteShop(ctx context.Context, id string) error
}
