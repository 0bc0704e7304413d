package model

import "time"

// Payment lifecycle of a purchase. A collection_detail row exists for a
// purchase exactly while its status is PaymentStatusPaid.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Purchase struct {
	BaseModel
	CollectionID  string     `db:"collection_id" json:"collection_id"`
	Quantity      int        `db:"quantity" json:"quantity"`
	PricePerUnit  float64    `db:"price_per_unit" json:"price_per_unit"`
	TotalPrice    float64    `db:"total_price" json:"total_price"`
	PurchaseType  *string    `db:"purchase_type" json:"purchase_type"`
	Platform      *string    `db:"platform" json:"platform"`
	PreOrderState *string    `db:"pre_order_status" json:"pre_order_status"`
	PreOrderDate  *time.Time `db:"pre_order_date" json:"pre_order_date"`
	PaymentStatus string     `db:"payment_status" json:"payment_status"`
	PaymentMethod *string    `db:"payment_method" json:"payment_method"`
	PaymentDate   *time.Time `db:"payment_date" json:"payment_date"`
	ArrivalDate   *time.Time `db:"arrival_date" json:"arrival_date"`
	URLLink       *string    `db:"url_link" json:"url_link"`
	IsChase       bool       `db:"is_chase" json:"is_chase"`
	EditionType   *string    `db:"edition_type" json:"edition_type"`
	PackagingType *string    `db:"packaging_type" json:"packaging_type"`
	SizeDetail    *string    `db:"size_detail" json:"size_detail"`
	HasAcrylic    bool       `db:"has_acrylic" json:"has_acrylic"`
	ShopID        *string    `db:"shop_id" json:"shop_id"`
	ShopName      *string    `db:"shop_name" json:"shop_name"`
	Address       *string    `db:"address" json:"address"`
	Country       *string    `db:"country" json:"country"`
	Remark        *string    `db:"remark" json:"remark"`

	// Joined collection data for list views, not columns of purchase.
	CollectionName string  `db:"collection_name" json:"collection_name,omitempty"`
	BrandID        int     `db:"brand_id" json:"brand_id,omitempty"`
	BrandName      string  `db:"brand_name" json:"brand_name,omitempty"`
	Scale          *string `db:"scale" json:"scale,omitempty"`
}

// CollectionDetail is the derived owned-item ledger row. At most one exists
// per purchase (purchase_id is unique), and it can always be recomputed from
// the purchase it mirrors.
type CollectionDetail struct {
	BaseModel
	CollectionID  string  `db:"collection_id" json:"collection_id"`
	PurchaseID    string  `db:"purchase_id" json:"purchase_id"`
	Quantity      int     `db:"quantity" json:"quantity"`
	BrandID       int     `db:"brand_id" json:"brand_id"`
	IsChase       bool    `db:"is_chase" json:"is_chase"`
	EditionType   *string `db:"edition_type" json:"edition_type"`
	PackagingType *string `db:"packaging_type" json:"packaging_type"`
	SizeDetail    *string `db:"size_detail" json:"size_detail"`
	HasAcrylic    bool    `db:"has_acrylic" json:"has_acrylic"`
	IsCase        bool    `db:"is_case" json:"is_case"`
	Remark        *string `db:"remark" json:"remark"`
}
