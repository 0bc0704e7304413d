package brand

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, brand *model.Brand) error
	FindByID(ctx context.Context, id int) (*model.Brand, error)
	FindAll(ctx context.Context, onlyActive bool) ([]model.Brand, error)
	Update(ctx context.Context, brand *model.Brand) error
}
