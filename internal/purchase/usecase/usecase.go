package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/collection"
	collectiondto "github.com/aqmarzaini/diecast-admin-service/internal/collection/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/cache"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop"
	shopdto "github.com/aqmarzaini/diecast-admin-service/internal/shop/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/stats"
)

const detailSyncWarning = "purchase saved, but the owned collection detail could not be synchronized"

type purchaseUseCase struct {
	repo        purchase.Repository
	syncer      *DetailSynchronizer
	collections collection.UseCase
	shops       shop.UseCase
	cache       *cache.RedisClient
	publisher   purchase.EventPublisher
	logger      logger.ZapLogger
}

func NewPurchaseUseCase(
	repo purchase.Repository,
	details purchase.DetailRepository,
	collections collection.UseCase,
	shops shop.UseCase,
	cache *cache.RedisClient,
	publisher purchase.EventPublisher,
	log logger.ZapLogger,
) purchase.UseCase {
	return &purchaseUseCase{
		repo:        repo,
		syncer:      NewDetailSynchronizer(details),
		collections: collections,
		shops:       shops,
		cache:       cache,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *purchaseUseCase) CreatePurchase(ctx context.Context, input *dto.SavePurchaseInput) (*dto.SaveResult, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	col, err := uc.collections.ResolveOrCreate(ctx, &collectiondto.ResolveCollectionInput{
		Name:    input.CollectionName,
		ItemNo:  input.ItemNo,
		BrandID: input.BrandID,
		Scale:   input.Scale,
		Remark:  input.Remark,
	})
	if err != nil {
		return nil, err
	}

	shopID, err := uc.shops.ResolveOrCreate(ctx, &shopdto.ResolveShopInput{
		ShopName: input.ShopName,
		Address:  input.Address,
		Country:  input.Country,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Purchase{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CollectionID: col.ID,
	}
	applyInput(p, input, shopID)

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	result := &dto.SaveResult{Purchase: p}

	// The purchase is committed; ledger reconciliation is best-effort from
	// here on. A new purchase has no previous payment state.
	if err := uc.syncer.Sync(ctx, false, p.PaymentStatus == model.PaymentStatusPaid, p, input.BrandID); err != nil {
		uc.logger.Warn("collection detail sync failed",
			zap.String("purchase_id", p.ID),
			zap.Error(err),
		)
		result.SyncWarning = detailSyncWarning
	}

	uc.afterSave(p)
	return result, nil
}

func (uc *purchaseUseCase) UpdatePurchase(ctx context.Context, input *dto.UpdatePurchaseInput) (*dto.SaveResult, error) {
	if err := validate(&input.SavePurchaseInput); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, purchase.ErrPurchaseNotFound
	}
	wasPaid := existing.PaymentStatus == model.PaymentStatusPaid

	if _, err := uc.collections.UpdateCollection(ctx, &collectiondto.UpdateCollectionInput{
		ID:      existing.CollectionID,
		Name:    input.CollectionName,
		ItemNo:  input.ItemNo,
		BrandID: input.BrandID,
		Scale:   input.Scale,
		Remark:  input.Remark,
	}); err != nil {
		return nil, err
	}

	shopID, err := uc.shops.ResolveOrCreate(ctx, &shopdto.ResolveShopInput{
		ShopName: input.ShopName,
		Address:  input.Address,
		Country:  input.Country,
	})
	if err != nil {
		return nil, err
	}

	p := existing
	applyInput(p, &input.SavePurchaseInput, shopID)
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	result := &dto.SaveResult{Purchase: p}

	if err := uc.syncer.Sync(ctx, wasPaid, p.PaymentStatus == model.PaymentStatusPaid, p, input.BrandID); err != nil {
		uc.logger.Warn("collection detail sync failed",
			zap.String("purchase_id", p.ID),
			zap.Error(err),
		)
		result.SyncWarning = detailSyncWarning
	}

	uc.afterSave(p)
	return result, nil
}

func (uc *purchaseUseCase) GetPurchase(ctx context.Context, id string) (*model.Purchase, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *purchaseUseCase) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	return uc.repo.FindAll(ctx)
}

// applyInput copies the submitted fields onto p. Total price is always
// recomputed from quantity and unit price at write time.
func applyInput(p *model.Purchase, input *dto.SavePurchaseInput, shopID *string) {
	p.Quantity = input.Quantity
	p.PricePerUnit = input.PricePerUnit
	p.TotalPrice = float64(input.Quantity) * input.PricePerUnit
	p.PurchaseType = input.PurchaseType
	p.Platform = input.Platform
	p.PreOrderState = input.PreOrderStatus
	p.PreOrderDate = input.PreOrderDate
	p.PaymentStatus = normalizeStatus(input.PaymentStatus)
	p.PaymentMethod = input.PaymentMethod
	p.PaymentDate = input.PaymentDate
	p.ArrivalDate = input.ArrivalDate
	p.URLLink = input.URLLink
	p.IsChase = input.IsChase
	p.EditionType = input.EditionType
	p.PackagingType = input.PackagingType
	p.SizeDetail = input.SizeDetail
	p.HasAcrylic = input.HasAcrylic
	p.ShopID = shopID
	p.ShopName = input.ShopName
	p.Address = input.Address
	p.Country = input.Country
	p.Remark = input.Remark
}

func validate(input *dto.SavePurchaseInput) error {
	if input.CollectionName == "" {
		return purchase.ErrCollectionNameRequired
	}
	if input.BrandID <= 0 {
		return purchase.ErrBrandRequired
	}
	if input.Quantity < 1 {
		return purchase.ErrInvalidQuantity
	}
	if input.PricePerUnit <= 0 {
		return purchase.ErrInvalidPrice
	}
	switch normalizeStatus(input.PaymentStatus) {
	case model.PaymentStatusUnpaid, model.PaymentStatusPaid, model.PaymentStatusRefunded:
		return nil
	default:
		return purchase.ErrInvalidPaymentStatus
	}
}

func normalizeStatus(status string) string {
	if status == "" {
		return model.PaymentStatusUnpaid
	}
	return status
}

// afterSave runs the fire-and-forget side effects: the dashboard cache is
// stale and downstream consumers want to hear about the save.
func (uc *purchaseUseCase) afterSave(p *model.Purchase) {
	if uc.cache != nil {
		go func() {
			uc.cache.Client.Del(context.Background(), stats.DashboardCacheKey)
		}()
	}

	if uc.publisher != nil {
		event := dto.PurchaseSavedEvent{
			EventID:   uuid.New().String(),
			EventType: "PurchaseSaved",
			Payload: dto.PurchaseSavedDetail{
				PurchaseID:    p.ID,
				CollectionID:  p.CollectionID,
				PaymentStatus: p.PaymentStatus,
				Quantity:      p.Quantity,
				TotalPrice:    p.TotalPrice,
			},
			Timestamp: time.Now(),
		}
		go func() {
			data, err := json.Marshal(event)
			if err != nil {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := uc.publisher.Publish(ctx, p.ID, data); err != nil {
				uc.logger.Warn("failed to publish purchase event",
					zap.String("purchase_id", p.ID),
					zap.Error(err),
				)
			}
		}()
	}
}
