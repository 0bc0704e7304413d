package collection

import (
	"context"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, collection *model.Collection) error
	FindByID(ctx context.Context, id string) (*model.Collection, error)
	// FindByKey matches on the exact (name, brand, scale) triple; a NULL
	// scale only matches a nil scale input.
	FindByKey(ctx context.Context, name string, brandID int, scale *string) (*model.Collection, error)
	FindAll(ctx context.Context) ([]model.Collection, error)
	Update(ctx context.Context, collection *model.Collection) error
	// SearchByText is the store-side fallback when the search index is
	// unavailable.
	SearchByText(ctx context.Context, query string, limit int) ([]model.Collection, error)
}
