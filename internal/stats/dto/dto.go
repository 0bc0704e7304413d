package dto

import "time"

type Totals struct {
	TotalSpent       float64 `db:"total_spent" json:"total_spent"`
	PurchaseCount    int     `db:"purchase_count" json:"purchase_count"`
	AverageUnitPrice float64 `db:"average_unit_price" json:"average_unit_price"`
}

type PeriodSpend struct {
	Spent    float64 `db:"spent" json:"spent"`
	Quantity int     `db:"quantity" json:"quantity"`
}

type RecentPurchase struct {
	ID             string     `db:"id" json:"id"`
	CollectionName string     `db:"collection_name" json:"collection_name"`
	PackagingType  *string    `db:"packaging_type" json:"packaging_type"`
	TotalPrice     float64    `db:"total_price" json:"total_price"`
	PaymentDate    *time.Time `db:"payment_date" json:"payment_date"`
}

type BrandSpend struct {
	BrandID    int     `db:"brand_id" json:"brand_id"`
	BrandName  string  `db:"brand_name" json:"brand_name"`
	TotalSpent float64 `db:"total_spent" json:"total_spent"`
	Percentage float64 `db:"-" json:"percentage"`
}

type DashboardStats struct {
	Totals             Totals           `json:"totals"`
	OwnedQuantity      int              `json:"owned_quantity"`
	OwnedQuantityMonth int              `json:"owned_quantity_this_month"`
	MonthSpend         PeriodSpend      `json:"month_spend"`
	RecentPurchases    []RecentPurchase `json:"recent_purchases"`
	BrandSpending      []BrandSpend     `json:"brand_spending"`
}
