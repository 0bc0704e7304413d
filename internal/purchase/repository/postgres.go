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

func (r *PGRepository) Create(ctx context.Context, p *model.Purchase) error {
	query := `
        INSERT INTO purchase (
            id, collection_id, quantity, price_per_unit, total_price,
            purchase_type, platform, pre_order_status, pre_order_date,
            payment_status, payment_method, payment_date, arrival_date,
            url_link, is_chase, edition_type, packaging_type, size_detail,
            has_acrylic, shop_id, shop_name, address, country, remark,
            created_at, updated_at
        )
        VALUES (
            :id, :collection_id, :quantity, :price_per_unit, :total_price,
            :purchase_type, :platform, :pre_order_status, :pre_order_date,
            :payment_status, :payment_method, :payment_date, :arrival_date,
            :url_link, :is_chase, :edition_type, :packaging_type, :size_detail,
            :has_acrylic, :shop_id, :shop_name, :address, :country, :remark,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return pkgerrors.Wrap(err, "purchase repo: create")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Purchase, error) {
	var purchase model.Purchase
	query := `
        SELECT p.*, c.name AS collection_name, c.brand_id, c.scale, b.name AS brand_name
        FROM purchase p
        JOIN collection c ON c.id = p.collection_id
        JOIN master_brand b ON b.id = c.brand_id
        WHERE p.id = $1
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &purchase, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "purchase repo: find by id")
	}
	return &purchase, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Purchase, error) {
	var purchases []model.Purchase
	query := `
        SELECT p.*, c.name AS collection_name, c.brand_id, c.scale, b.name AS brand_name
        FROM purchase p
        JOIN collection c ON c.id = p.collection_id
        JOIN master_brand b ON b.id = c.brand_id
        ORDER BY p.payment_date DESC NULLS LAST
    `
	if err := r.DB.SelectContext(ctx, &purchases, query); err != nil {
		return nil, pkgerrors.Wrap(err, "purchase repo: find all")
	}
	return purchases, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Purchase) error {
	query := `
        UPDATE purchase
        SET quantity = :quantity,
            price_per_unit = :price_per_unit,
            total_price = :total_price,
            purchase_type = :purchase_type,
            platform = :platform,
            pre_order_status = :pre_order_status,
            pre_order_date = :pre_order_date,
            payment_status = :payment_status,
            payment_method = :payment_method,
            payment_date = :payment_date,
            arrival_date = :arrival_date,
            url_link = :url_link,
            is_chase = :is_chase,
            edition_type = :edition_type,
            packaging_type = :packaging_type,
            size_detail = :size_detail,
            has_acrylic = :has_acrylic,
            shop_id = :shop_id,
            shop_name = :shop_name,
            address = :address,
            country = :country,
            remark = :remark,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return pkgerrors.Wrap(err, "purchase repo: update")
}
