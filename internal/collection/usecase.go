package collection

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/collection/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type UseCase interface {
	// ResolveOrCreate returns the collection exactly matching the
	// (name, brand, scale) triple, creating a new row when any of the
	// three differs from every existing collection.
	ResolveOrCreate(ctx context.Context, input *dto.ResolveCollectionInput) (*model.Collection, error)

	GetCollection(ctx context.Context, id string) (*model.Collection, error)
	ListCollections(ctx context.Context) ([]model.Collection, error)
	UpdateCollection(ctx context.Context, input *dto.UpdateCollectionInput) (*model.Collection, error)
	SearchCollections(ctx context.Context, query string, limit int) ([]model.Collection, error)
}
