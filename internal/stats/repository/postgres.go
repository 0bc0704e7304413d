package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/pkg/errors"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/stats/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Totals(ctx context.Context) (*dto.Totals, error) {
	var totals dto.Totals
	query := `
        SELECT COALESCE(SUM(total_price), 0) AS total_spent,
               COUNT(*) AS purchase_count,
               COALESCE(AVG(price_per_unit), 0) AS average_unit_price
        FROM purchase
    `
	if err := r.DB.GetContext(ctx, &totals, query); err != nil {
		return nil, pkgerrors.Wrap(err, "stats repo: totals")
	}
	return &totals, nil
}

func (r *PGRepository) PaidQuantity(ctx context.Context, since *time.Time) (int, error) {
	var quantity int
	query := `SELECT COALESCE(SUM(quantity), 0) FROM purchase WHERE payment_status = $1`
	args := []interface{}{model.PaymentStatusPaid}
	if since != nil {
		query += ` AND payment_date >= $2`
		args = append(args, *since)
	}
	if err := r.DB.GetContext(ctx, &quantity, query, args...); err != nil {
		return 0, pkgerrors.Wrap(err, "stats repo: paid quantity")
	}
	return quantity, nil
}

func (r *PGRepository) SpendSince(ctx context.Context, since time.Time) (*dto.PeriodSpend, error) {
	var spend dto.PeriodSpend
	query := `
        SELECT COALESCE(SUM(total_price), 0) AS spent,
               COALESCE(SUM(quantity), 0) AS quantity
        FROM purchase
        WHERE payment_date >= $1
    `
	if err := r.DB.GetContext(ctx, &spend, query, since); err != nil {
		return nil, pkgerrors.Wrap(err, "stats repo: spend since")
	}
	return &spend, nil
}

func (r *PGRepository) RecentPurchases(ctx context.Context, limit int) ([]dto.RecentPurchase, error) {
	var recent []dto.RecentPurchase
	query := `
        SELECT p.id, c.name AS collection_name, p.packaging_type, p.total_price, p.payment_date
        FROM purchase p
        JOIN collection c ON c.id = p.collection_id
        WHERE p.payment_date IS NOT NULL
        ORDER BY p.payment_date DESC
        LIMIT $1
    `
	if err := r.DB.SelectContext(ctx, &recent, query, limit); err != nil {
		return nil, pkgerrors.Wrap(err, "stats repo: recent purchases")
	}
	return recent, nil
}

func (r *PGRepository) BrandSpending(ctx context.Context) ([]dto.BrandSpend, error) {
	var spending []dto.BrandSpend
	query := `
        SELECT c.brand_id, b.name AS brand_name, COALESCE(SUM(p.total_price), 0) AS total_spent
        FROM purchase p
        JOIN collection c ON c.id = p.collection_id
        JOIN master_brand b ON b.id = c.brand_id
        GROUP BY c.brand_id, b.name
        ORDER BY total_spent DESC
    `
	if err := r.DB.SelectContext(ctx, &spending, query); err != nil {
		return nil, pkgerrors.Wrap(err, "stats repo: brand spending")
	}
	return spending, nil
}
