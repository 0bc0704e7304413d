package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Shop) error {
	query := `
        INSERT INTO shop_information (id, shop_name, address, country, created_at, updated_at)
        VALUES (:id, :shop_name, :address, :country, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return pkgerrors.Wrap(err, "shop repo: create")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Shop, error) {
	var shop model.Shop
	query := `SELECT * FROM shop_information WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &shop, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "shop repo: find by id")
	}
	return &shop, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	query := `SELECT * FROM shop_information ORDER BY created_at`
	if err := r.DB.SelectContext(ctx, &shops, query); err != nil {
		return nil, pkgerrors.Wrap(err, "shop repo: find all")
	}
	return shops, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Shop) error {
	query := `
        UPDATE shop_information
        SET shop_name = :shop_name,
            address = :address,
            country = :country,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return pkgerrors.Wrap(err, "shop repo: update")
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM shop_information WHERE id = $1`, id)
	return pkgerrors.Wrap(err, "shop repo: delete")
}
