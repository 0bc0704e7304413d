package dto

import "time"

type SavePurchaseInput struct {
	CollectionName string  `json:"collection_name"`
	ItemNo         *string `json:"item_no"`
	BrandID        int     `json:"brand_id"`
	Scale          *string `json:"scale"`

	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`

	PurchaseType   *string    `json:"purchase_type"`
	Platform       *string    `json:"platform"`
	PreOrderStatus *string    `json:"pre_order_status"`
	PreOrderDate   *time.Time `json:"pre_order_date"`
	PaymentStatus  string     `json:"payment_status"`
	PaymentMethod  *string    `json:"payment_method"`
	PaymentDate    *time.Time `json:"payment_date"`
	ArrivalDate    *time.Time `json:"arrival_date"`
	URLLink        *string    `json:"url_link"`
	IsChase        bool       `json:"is_chase"`
	EditionType    *string    `json:"edition_type"`
	PackagingType  *string    `json:"packaging_type"`
	SizeDetail     *string    `json:"size_detail"`
	HasAcrylic     bool       `json:"has_acrylic"`

	ShopName *string `json:"shop_name"`
	Address  *string `json:"address"`
	Country  *string `json:"country"`

	Remark *string `json:"remark"`
}

type UpdatePurchaseInput struct {
	ID string `json:"-"`
	SavePurchaseInput
}
