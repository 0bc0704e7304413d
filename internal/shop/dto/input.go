package dto

type ResolveShopInput struct {
	ShopName *string `json:"shop_name"`
	Address  *string `json:"address"`
	Country  *string `json:"country"`
}

type UpdateShopInput struct {
	ID       string  `json:"-"`
	ShopName *string `json:"shop_name"`
	Address  *string `json:"address"`
	Country  *string `json:"country"`
}
