package dto

type ResolveCollectionInput struct {
	Name    string
	ItemNo  *string
	BrandID int
	Scale   *string
	Remark  *string
}

type UpdateCollectionInput struct {
	ID      string  `json:"-"`
	Name    string  `json:"name" binding:"required"`
	ItemNo  *string `json:"item_no"`
	BrandID int     `json:"brand_id" binding:"required"`
	Scale   *string `json:"scale"`
	Remark  *string `json:"remark"`
}
