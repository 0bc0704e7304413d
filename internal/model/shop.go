package model

// Shop is a deduplicated vendor record. No two rows share the same
// normalized (shop_name, address, country) triple; empty fields are stored
// as NULL.
type Shop struct {
	BaseModel
	ShopName *string `db:"shop_name" json:"shop_name"`
	Address  *string `db:"address" json:"address"`
	Country  *string `db:"country" json:"country"`
}
