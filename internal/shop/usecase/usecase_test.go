package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/shop/dto"
)

type fakeShopRepo struct {
	shops      []model.Shop
	createErr  error
	findAllErr error
}

func (f *fakeShopRepo) Create(_ context.Context, s *model.Shop) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.shops = append(f.shops, *s)
	return nil
}

func (f *fakeShopRepo) FindByID(_ context.Context, id string) (*model.Shop, error) {
	for i := range f.shops {
		if f.shops[i].ID == id {
			return &f.shops[i], nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) FindAll(_ context.Context) ([]model.Shop, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.shops, nil
}

func (f *fakeShopRepo) Update(_ context.Context, s *model.Shop) error {
	for i := range f.shops {
		if f.shops[i].ID == s.ID {
			f.shops[i] = *s
			return nil
		}
	}
	return nil
}

func (f *fakeShopRepo) Delete(_ context.Context, id string) error {
	for i := range f.shops {
		if f.shops[i].ID == id {
			f.shops = append(f.shops[:i], f.shops[i+1:]...)
			return nil
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestResolveOrCreateIsIdempotentAcrossWhitespace(t *testing.T) {
	repo := &fakeShopRepo{}
	uc := NewShopUseCase(repo, logger.NewNop())
	ctx := context.Background()

	first, err := uc.ResolveOrCreate(ctx, &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
		Address:  strPtr(" KL "),
		Country:  strPtr("Malaysia"),
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := uc.ResolveOrCreate(ctx, &dto.ResolveShopInput{
		ShopName: strPtr(" Acme Toys"),
		Address:  strPtr("KL"),
		Country:  strPtr("Malaysia "),
	})
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Len(t, repo.shops, 1)
}

func TestResolveOrCreateTreatsNilAndEmptyAsEqual(t *testing.T) {
	repo := &fakeShopRepo{}
	uc := NewShopUseCase(repo, logger.NewNop())
	ctx := context.Background()

	first, err := uc.ResolveOrCreate(ctx, &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
		Address:  nil,
		Country:  strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := uc.ResolveOrCreate(ctx, &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
		Address:  strPtr("  "),
		Country:  nil,
	})
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, *first, *second)
	assert.Len(t, repo.shops, 1)
}

func TestResolveOrCreateBlankInputCreatesNothing(t *testing.T) {
	repo := &fakeShopRepo{}
	uc := NewShopUseCase(repo, logger.NewNop())

	id, err := uc.ResolveOrCreate(context.Background(), &dto.ResolveShopInput{
		ShopName: nil,
		Address:  strPtr("   "),
		Country:  strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Empty(t, repo.shops)
}

func TestResolveOrCreateStoresNullForEmptyFields(t *testing.T) {
	repo := &fakeShopRepo{}
	uc := NewShopUseCase(repo, logger.NewNop())

	id, err := uc.ResolveOrCreate(context.Background(), &dto.ResolveShopInput{
		ShopName: strPtr(" Acme Toys "),
		Address:  nil,
		Country:  strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, id)

	require.Len(t, repo.shops, 1)
	created := repo.shops[0]
	require.NotNil(t, created.ShopName)
	assert.Equal(t, "Acme Toys", *created.ShopName)
	assert.Nil(t, created.Address)
	assert.Nil(t, created.Country)
}

func TestResolveOrCreateDistinguishesAllThreeFields(t *testing.T) {
	repo := &fakeShopRepo{}
	uc := NewShopUseCase(repo, logger.NewNop())
	ctx := context.Background()

	first, err := uc.ResolveOrCreate(ctx, &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
		Address:  strPtr("KL"),
		Country:  strPtr("Malaysia"),
	})
	require.NoError(t, err)

	// Same name and country but different address is a different shop.
	second, err := uc.ResolveOrCreate(ctx, &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
		Address:  strPtr("Penang"),
		Country:  strPtr("Malaysia"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, *first, *second)
	assert.Len(t, repo.shops, 2)
}

func TestResolveOrCreatePropagatesStoreErrors(t *testing.T) {
	repo := &fakeShopRepo{findAllErr: errors.New("connection reset")}
	uc := NewShopUseCase(repo, logger.NewNop())

	_, err := uc.ResolveOrCreate(context.Background(), &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
	})
	assert.Error(t, err)

	repo = &fakeShopRepo{createErr: errors.New("insert failed")}
	uc = NewShopUseCase(repo, logger.NewNop())
	_, err = uc.ResolveOrCreate(context.Background(), &dto.ResolveShopInput{
		ShopName: strPtr("Acme Toys"),
	})
	assert.Error(t, err)
	assert.Empty(t, repo.shops)
}

func TestUpdateShopUnknownID(t *testing.T) {
	uc := NewShopUseCase(&fakeShopRepo{}, logger.NewNop())

	_, err := uc.UpdateShop(context.Background(), &dto.UpdateShopInput{
		ID:       "missing",
		ShopName: strPtr("Acme Toys"),
	})
	assert.ErrorIs(t, err, ErrShopNotFound)
}
