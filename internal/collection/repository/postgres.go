package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/text"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Collection) error {
	query := `
        INSERT INTO collection (id, name, item_no, brand_id, scale, remark, created_at, updated_at)
        VALUES (:id, :name, :item_no, :brand_id, :scale, :remark, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return pkgerrors.Wrap(err, "collection repo: create")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Collection, error) {
	var collection model.Collection
	query := `
        SELECT c.*, b.name AS brand_name
        FROM collection c
        JOIN master_brand b ON b.id = c.brand_id
        WHERE c.id = $1
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &collection, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "collection repo: find by id")
	}
	return &collection, nil
}

func (r *PGRepository) FindByKey(ctx context.Context, name string, brandID int, scale *string) (*model.Collection, error) {
	var collection model.Collection
	// NULL and empty scale compare equal; everything else is exact.
	query := `
        SELECT * FROM collection
        WHERE name = $1 AND brand_id = $2 AND COALESCE(scale, '') = $3
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &collection, query, name, brandID, text.Clean(scale))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "collection repo: find by key")
	}
	return &collection, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Collection, error) {
	var collections []model.Collection
	query := `
        SELECT c.*, b.name AS brand_name
        FROM collection c
        JOIN master_brand b ON b.id = c.brand_id
        ORDER BY c.created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &collections, query); err != nil {
		return nil, pkgerrors.Wrap(err, "collection repo: find all")
	}
	return collections, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Collection) error {
	query := `
        UPDATE collection
        SET name = :name,
            item_no = :item_no,
            brand_id = :brand_id,
            scale = :scale,
            remark = :remark,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return pkgerrors.Wrap(err, "collection repo: update")
}

func (r *PGRepository) SearchByText(ctx context.Context, q string, limit int) ([]model.Collection, error) {
	var collections []model.Collection
	query := `
        SELECT c.*, b.name AS brand_name
        FROM collection c
        JOIN master_brand b ON b.id = c.brand_id
        WHERE c.name ILIKE $1 OR c.item_no ILIKE $1
        ORDER BY c.created_at DESC
        LIMIT $2
    `
	if err := r.DB.SelectContext(ctx, &collections, query, "%"+q+"%", limit); err != nil {
		return nil, pkgerrors.Wrap(err, "collection repo: search")
	}
	return collections, nil
}
