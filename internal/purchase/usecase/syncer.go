package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase"
)

// DetailSynchronizer keeps the collection_detail ledger consistent with a
// purchase's payment status: a detail row exists for a purchase exactly
// while the purchase is paid. It must only run after the purchase row has
// been durably written.
type DetailSynchronizer struct {
	details purchase.DetailRepository
}

func NewDetailSynchronizer(details purchase.DetailRepository) *DetailSynchronizer {
	return &DetailSynchronizer{details: details}
}

// Sync applies the transition for (wasPaid, isPaid). For a brand-new
// purchase the caller passes wasPaid=false. brandID comes from the resolved
// collection; the purchase row does not carry it.
func (s *DetailSynchronizer) Sync(ctx context.Context, wasPaid, isPaid bool, p *model.Purchase, brandID int) error {
	switch {
	case !wasPaid && isPaid:
		now := time.Now()
		detail := &model.CollectionDetail{
			BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			CollectionID:  p.CollectionID,
			PurchaseID:    p.ID,
			Quantity:      p.Quantity,
			BrandID:       brandID,
			IsChase:       p.IsChase,
			EditionType:   p.EditionType,
			PackagingType: p.PackagingType,
			SizeDetail:    p.SizeDetail,
			HasAcrylic:    p.HasAcrylic,
			IsCase:        false,
			Remark:        p.Remark,
		}
		return s.details.Insert(ctx, detail)

	case wasPaid && !isPaid:
		return s.details.DeleteByPurchaseID(ctx, p.ID)

	case wasPaid && isPaid:
		detail := &model.CollectionDetail{
			BaseModel:     model.BaseModel{UpdatedAt: time.Now()},
			CollectionID:  p.CollectionID,
			PurchaseID:    p.ID,
			Quantity:      p.Quantity,
			BrandID:       brandID,
			IsChase:       p.IsChase,
			EditionType:   p.EditionType,
			PackagingType: p.PackagingType,
			SizeDetail:    p.SizeDetail,
			HasAcrylic:    p.HasAcrylic,
			Remark:        p.Remark,
		}
		return s.details.UpdateByPurchaseID(ctx, detail)
	}

	// Neither side paid: the ledger has no row for this purchase and should
	// not get one.
	return nil
}
