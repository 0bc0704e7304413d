package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/text"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop/dto"
)

var ErrShopNotFound = errors.New("shop not found")

type shopUseCase struct {
	repo   shop.Repository
	logger logger.ZapLogger
}

func NewShopUseCase(repo shop.Repository, log logger.ZapLogger) shop.UseCase {
	return &shopUseCase{
		repo:   repo,
		logger: log,
	}
}

// ResolveOrCreate deduplicates free-text shop attributes against existing
// rows. Matching happens in-process over normalized values so that NULL,
// "" and whitespace-only inputs all compare equal. Concurrent calls with
// the same unseen triple can still race and create two rows; there is no
// store-level uniqueness backing this up.
func (uc *shopUseCase) ResolveOrCreate(ctx context.Context, input *dto.ResolveShopInput) (*string, error) {
	name := text.Clean(input.ShopName)
	address := text.Clean(input.Address)
	country := text.Clean(input.Country)

	if name == "" && address == "" && country == "" {
		return nil, nil
	}

	shops, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range shops {
		s := &shops[i]
		if text.Clean(s.ShopName) == name && text.Clean(s.Address) == address && text.Clean(s.Country) == country {
			return &s.ID, nil
		}
	}

	now := time.Now()
	created := &model.Shop{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		ShopName:  text.NilIfEmpty(name),
		Address:   text.NilIfEmpty(address),
		Country:   text.NilIfEmpty(country),
	}
	if err := uc.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	uc.logger.Info("created shop", zap.String("shop_id", created.ID), zap.String("shop_name", name))
	return &created.ID, nil
}

func (uc *shopUseCase) ListShops(ctx context.Context) ([]model.Shop, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *shopUseCase) UpdateShop(ctx context.Context, input *dto.UpdateShopInput) (*model.Shop, error) {
	s, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrShopNotFound
	}

	s.ShopName = text.NilIfEmpty(text.Clean(input.ShopName))
	s.Address = text.NilIfEmpty(text.Clean(input.Address))
	s.Country = text.NilIfEmpty(text.Clean(input.Country))
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *shopUseCase) DeleteShop(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
