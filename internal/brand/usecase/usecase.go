package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/brand"
	"github.com/aqmarzaini/diecast-admin-service/internal/brand/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/cache"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
)

var ErrBrandNotFound = errors.New("brand not found")

const activeBrandsCacheKey = "brands:active"

type brandUseCase struct {
	repo   brand.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewBrandUseCase(repo brand.Repository, cache *cache.RedisClient, log logger.ZapLogger) brand.UseCase {
	return &brandUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (uc *brandUseCase) ListBrands(ctx context.Context, onlyActive bool) ([]model.Brand, error) {
	// Only the active list is cached; it backs every brand picker.
	if onlyActive && uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, activeBrandsCacheKey).Result(); err == nil {
			var brands []model.Brand
			if err := json.Unmarshal([]byte(val), &brands); err == nil {
				return brands, nil
			}
		}
	}

	brands, err := uc.repo.FindAll(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	if onlyActive && uc.cache != nil {
		if data, err := json.Marshal(brands); err == nil {
			uc.cache.Client.Set(ctx, activeBrandsCacheKey, data, 10*time.Minute)
		}
	}

	return brands, nil
}

func (uc *brandUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	b := &model.Brand{
		Name:     input.Name,
		Type:     input.Type,
		IsActive: 1,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx)
	uc.logger.Info("created brand", zap.Int("brand_id", b.ID), zap.String("name", b.Name))
	return b, nil
}

func (uc *brandUseCase) UpdateBrand(ctx context.Context, input *dto.UpdateBrandInput) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBrandNotFound
	}

	b.Name = input.Name
	b.Type = input.Type
	b.IsActive = input.IsActive

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx)
	return b, nil
}

func (uc *brandUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cache.Client.Del(ctx, activeBrandsCacheKey)
}
