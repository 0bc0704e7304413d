package shop

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, shop *model.Shop) error
	FindByID(ctx context.Context, id string) (*model.Shop, error)
	FindAll(ctx context.Context) ([]model.Shop, error)
	Update(ctx context.Context, shop *model.Shop) error
	Delete(ctx context.Context, id string) error
}
