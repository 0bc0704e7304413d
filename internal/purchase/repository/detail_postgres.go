package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

type DetailPGRepository struct {
	DB *sqlx.DB
}

func NewDetailPGRepository(db *sqlx.DB) *DetailPGRepository {
	return &DetailPGRepository{DB: db}
}

func (r *DetailPGRepository) Insert(ctx context.Context, d *model.CollectionDetail) error {
	query := `
        INSERT INTO collection_detail (
            id, collection_id, purchase_id, quantity, brand_id, is_chase,
            edition_type, packaging_type, size_detail, has_acrylic, is_case,
            remark, created_at, updated_at
        )
        VALUES (
            :id, :collection_id, :purchase_id, :quantity, :brand_id, :is_chase,
            :edition_type, :packaging_type, :size_detail, :has_acrylic, :is_case,
            :remark, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return pkgerrors.Wrap(err, "collection detail repo: insert")
}

func (r *DetailPGRepository) FindByPurchaseID(ctx context.Context, purchaseID string) (*model.CollectionDetail, error) {
	var detail model.CollectionDetail
	query := `SELECT * FROM collection_detail WHERE purchase_id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &detail, query, purchaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "collection detail repo: find by purchase id")
	}
	return &detail, nil
}

func (r *DetailPGRepository) UpdateByPurchaseID(ctx context.Context, d *model.CollectionDetail) error {
	query := `
        UPDATE collection_detail
        SET quantity = :quantity,
            brand_id = :brand_id,
            is_chase = :is_chase,
            edition_type = :edition_type,
            packaging_type = :packaging_type,
            size_detail = :size_detail,
            has_acrylic = :has_acrylic,
            remark = :remark,
            updated_at = :updated_at
        WHERE purchase_id = :purchase_id
    `
	_, err := r.DB.NamedExecContext(ctx, query, d)
	return pkgerrors.Wrap(err, "collection detail repo: update by purchase id")
}

func (r *DetailPGRepository) DeleteByPurchaseID(ctx context.Context, purchaseID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM collection_detail WHERE purchase_id = $1`, purchaseID)
	return pkgerrors.Wrap(err, "collection detail repo: delete by purchase id")
}
