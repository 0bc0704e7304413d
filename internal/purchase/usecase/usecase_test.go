package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	collectiondto "github.com/aqmarzaini/diecast-admin-service/internal/collection/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/text"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase"
	"github.com/aqmarzaini/diecast-admin-service/internal/purchase/dto"
	shopdto "github.com/aqmarzaini/diecast-admin-service/internal/shop/dto"
)

type fakePurchaseRepo struct {
	byID      map[string]*model.Purchase
	createErr error
	updateErr error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{byID: map[string]*model.Purchase{}}
}

func (f *fakePurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func (f *fakePurchaseRepo) FindByID(_ context.Context, id string) (*model.Purchase, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePurchaseRepo) FindAll(_ context.Context) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePurchaseRepo) Update(_ context.Context, p *model.Purchase) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

type fakeCollectionUC struct {
	byKey map[string]*model.Collection
	byID  map[string]*model.Collection
}

func newFakeCollectionUC() *fakeCollectionUC {
	return &fakeCollectionUC{
		byKey: map[string]*model.Collection{},
		byID:  map[string]*model.Collection{},
	}
}

func collectionKey(name string, brandID int, scale *string) string {
	return fmt.Sprintf("%s|%d|%s", name, brandID, text.Clean(scale))
}

func (f *fakeCollectionUC) ResolveOrCreate(_ context.Context, input *collectiondto.ResolveCollectionInput) (*model.Collection, error) {
	key := collectionKey(input.Name, input.BrandID, input.Scale)
	if c, ok := f.byKey[key]; ok {
		return c, nil
	}
	c := &model.Collection{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Name:      input.Name,
		BrandID:   input.BrandID,
		Scale:     input.Scale,
	}
	f.byKey[key] = c
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCollectionUC) GetCollection(_ context.Context, id string) (*model.Collection, error) {
	return f.byID[id], nil
}

func (f *fakeCollectionUC) ListCollections(_ context.Context) ([]model.Collection, error) {
	return nil, nil
}

func (f *fakeCollectionUC) UpdateCollection(_ context.Context, input *collectiondto.UpdateCollectionInput) (*model.Collection, error) {
	c, ok := f.byID[input.ID]
	if !ok {
		return nil, errors.New("collection not found")
	}
	c.Name = input.Name
	c.BrandID = input.BrandID
	c.Scale = input.Scale
	return c, nil
}

func (f *fakeCollectionUC) SearchCollections(_ context.Context, _ string, _ int) ([]model.Collection, error) {
	return nil, nil
}

type fakeShopUC struct {
	resolved map[string]string
}

func newFakeShopUC() *fakeShopUC {
	return &fakeShopUC{resolved: map[string]string{}}
}

func (f *fakeShopUC) ResolveOrCreate(_ context.Context, input *shopdto.ResolveShopInput) (*string, error) {
	name := text.Clean(input.ShopName)
	address := text.Clean(input.Address)
	country := text.Clean(input.Country)
	if name == "" && address == "" && country == "" {
		return nil, nil
	}
	key := name + "|" + address + "|" + country
	if id, ok := f.resolved[key]; ok {
		return &id, nil
	}
	id := uuid.New().String()
	f.resolved[key] = id
	return &id, nil
}

func (f *fakeShopUC) ListShops(_ context.Context) ([]model.Shop, error) { return nil, nil }
func (f *fakeShopUC) UpdateShop(_ context.Context, _ *shopdto.UpdateShopInput) (*model.Shop, error) {
	return nil, nil
}
func (f *fakeShopUC) DeleteShop(_ context.Context, _ string) error { return nil }

type harness struct {
	uc          purchase.UseCase
	purchases   *fakePurchaseRepo
	details     *fakeDetailRepo
	collections *fakeCollectionUC
	shops       *fakeShopUC
}

func newHarness() *harness {
	h := &harness{
		purchases:   newFakePurchaseRepo(),
		details:     newFakeDetailRepo(),
		collections: newFakeCollectionUC(),
		shops:       newFakeShopUC(),
	}
	h.uc = NewPurchaseUseCase(h.purchases, h.details, h.collections, h.shops, nil, nil, logger.NewNop())
	return h
}

func validInput() *dto.SavePurchaseInput {
	scale := "1:64"
	return &dto.SavePurchaseInput{
		CollectionName: "Nissan Skyline GT-R R34",
		BrandID:        1,
		Scale:          &scale,
		Quantity:       1,
		PricePerUnit:   25.50,
		PaymentStatus:  model.PaymentStatusUnpaid,
	}
}

func TestCreatePurchaseComputesTotalPrice(t *testing.T) {
	h := newHarness()
	input := validInput()
	input.Quantity = 3
	input.PricePerUnit = 12.40

	result, err := h.uc.CreatePurchase(context.Background(), input)
	require.NoError(t, err)
	assert.InDelta(t, 37.20, result.Purchase.TotalPrice, 1e-9)
}

func TestCreatePurchaseUnpaidLeavesNoDetail(t *testing.T) {
	h := newHarness()

	result, err := h.uc.CreatePurchase(context.Background(), validInput())
	require.NoError(t, err)
	assert.Empty(t, result.SyncWarning)
	assert.Empty(t, h.details.byPurchase)
}

func TestCreatePurchasePaidInsertsDetail(t *testing.T) {
	h := newHarness()
	input := validInput()
	input.PaymentStatus = model.PaymentStatusPaid

	result, err := h.uc.CreatePurchase(context.Background(), input)
	require.NoError(t, err)

	detail := h.details.byPurchase[result.Purchase.ID]
	require.NotNil(t, detail)
	assert.Equal(t, result.Purchase.CollectionID, detail.CollectionID)
	assert.Equal(t, input.BrandID, detail.BrandID)
	assert.Equal(t, input.Quantity, detail.Quantity)
}

func TestDetailInvariantAcrossStatusTransitions(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	// New purchase entered as unpaid: no ledger row.
	created, err := h.uc.CreatePurchase(ctx, validInput())
	require.NoError(t, err)
	id := created.Purchase.ID
	assert.Empty(t, h.details.byPurchase)

	// Edited to paid: exactly one row mirroring the purchase.
	edit := &dto.UpdatePurchaseInput{ID: id, SavePurchaseInput: *validInput()}
	edit.PaymentStatus = model.PaymentStatusPaid
	_, err = h.uc.UpdatePurchase(ctx, edit)
	require.NoError(t, err)
	require.Len(t, h.details.byPurchase, 1)
	assert.Equal(t, 1, h.details.byPurchase[id].Quantity)

	// Still paid, quantity changed: updated in place, not duplicated.
	edit.Quantity = 3
	_, err = h.uc.UpdatePurchase(ctx, edit)
	require.NoError(t, err)
	require.Len(t, h.details.byPurchase, 1)
	assert.Equal(t, 3, h.details.byPurchase[id].Quantity)
	assert.Equal(t, 1, h.details.inserts)

	// Refunded: the row is removed.
	edit.PaymentStatus = model.PaymentStatusRefunded
	_, err = h.uc.UpdatePurchase(ctx, edit)
	require.NoError(t, err)
	assert.Empty(t, h.details.byPurchase)
}

func TestCreatePurchaseReusesExactCollectionMatch(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	first, err := h.uc.CreatePurchase(ctx, validInput())
	require.NoError(t, err)

	second, err := h.uc.CreatePurchase(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, first.Purchase.CollectionID, second.Purchase.CollectionID)

	// Same name and scale under a different brand is a different collection.
	other := validInput()
	other.BrandID = 2
	third, err := h.uc.CreatePurchase(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, first.Purchase.CollectionID, third.Purchase.CollectionID)
	assert.Len(t, h.collections.byKey, 2)
}

func TestCreatePurchaseResolvesShop(t *testing.T) {
	h := newHarness()
	input := validInput()
	shopName := " Acme Toys "
	input.ShopName = &shopName

	result, err := h.uc.CreatePurchase(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, result.Purchase.ShopID)
	assert.Len(t, h.shops.resolved, 1)
}

func TestValidationRejectsBeforeAnyWrite(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.SavePurchaseInput)
		wantErr error
	}{
		{"zero quantity", func(in *dto.SavePurchaseInput) { in.Quantity = 0 }, purchase.ErrInvalidQuantity},
		{"negative quantity", func(in *dto.SavePurchaseInput) { in.Quantity = -1 }, purchase.ErrInvalidQuantity},
		{"zero price", func(in *dto.SavePurchaseInput) { in.PricePerUnit = 0 }, purchase.ErrInvalidPrice},
		{"missing name", func(in *dto.SavePurchaseInput) { in.CollectionName = "" }, purchase.ErrCollectionNameRequired},
		{"missing brand", func(in *dto.SavePurchaseInput) { in.BrandID = 0 }, purchase.ErrBrandRequired},
		{"bad status", func(in *dto.SavePurchaseInput) { in.PaymentStatus = "settled" }, purchase.ErrInvalidPaymentStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness()
			input := validInput()
			tc.mutate(input)

			_, err := h.uc.CreatePurchase(context.Background(), input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, h.purchases.byID)
			assert.Empty(t, h.collections.byKey)
		})
	}
}

func TestEmptyPaymentStatusDefaultsToUnpaid(t *testing.T) {
	h := newHarness()
	input := validInput()
	input.PaymentStatus = ""

	result, err := h.uc.CreatePurchase(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusUnpaid, result.Purchase.PaymentStatus)
}

func TestDetailSyncFailureYieldsWarningNotError(t *testing.T) {
	h := newHarness()
	h.details.insertErr = errors.New("connection reset")

	input := validInput()
	input.PaymentStatus = model.PaymentStatusPaid

	result, err := h.uc.CreatePurchase(context.Background(), input)
	require.NoError(t, err, "sync failure must not fail the committed save")
	assert.NotEmpty(t, result.SyncWarning)
	assert.Len(t, h.purchases.byID, 1)
}

func TestUpdatePurchaseNotFound(t *testing.T) {
	h := newHarness()

	_, err := h.uc.UpdatePurchase(context.Background(), &dto.UpdatePurchaseInput{
		ID:                "missing",
		SavePurchaseInput: *validInput(),
	})
	assert.ErrorIs(t, err, purchase.ErrPurchaseNotFound)
}

func TestPurchaseWriteFailureSkipsDetailSync(t *testing.T) {
	h := newHarness()
	h.purchases.createErr = errors.New("disk full")

	input := validInput()
	input.PaymentStatus = model.PaymentStatusPaid

	_, err := h.uc.CreatePurchase(context.Background(), input)
	require.Error(t, err)
	assert.Empty(t, h.details.byPurchase)
}
