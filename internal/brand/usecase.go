package brand

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/brand/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type UseCase interface {
	ListBrands(ctx context.Context, onlyActive bool) ([]model.Brand, error)
	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)
	UpdateBrand(ctx context.Context, input *dto.UpdateBrandInput) (*model.Brand, error)
}
