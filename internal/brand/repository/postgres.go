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

func (r *PGRepository) Create(ctx context.Context, b *model.Brand) error {
	query := `
        INSERT INTO master_brand (name, type, isactive)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.DB.GetContext(ctx, &b.ID, query, b.Name, b.Type, b.IsActive)
	return pkgerrors.Wrap(err, "brand repo: create")
}

func (r *PGRepository) FindByID(ctx context.Context, id int) (*model.Brand, error) {
	var brand model.Brand
	query := `SELECT * FROM master_brand WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &brand, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "brand repo: find by id")
	}
	return &brand, nil
}

func (r *PGRepository) FindAll(ctx context.Context, onlyActive bool) ([]model.Brand, error) {
	var brands []model.Brand
	query := `SELECT * FROM master_brand`
	if onlyActive {
		query += ` WHERE isactive = 1`
	}
	query += ` ORDER BY name`
	if err := r.DB.SelectContext(ctx, &brands, query); err != nil {
		return nil, pkgerrors.Wrap(err, "brand repo: find all")
	}
	return brands, nil
}

func (r *PGRepository) Update(ctx context.Context, b *model.Brand) error {
	query := `
        UPDATE master_brand
        SET name = :name, type = :type, isactive = :isactive
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return pkgerrors.Wrap(err, "brand repo: update")
}
