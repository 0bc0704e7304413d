package model

// Collection is a distinct model/product definition, identified for matching
// purposes by the (name, brand_id, scale) triple.
type Collection struct {
	BaseModel
	Name      string  `db:"name" json:"name"`
	ItemNo    *string `db:"item_no" json:"item_no"`
	BrandID   int     `db:"brand_id" json:"brand_id"`
	Scale     *string `db:"scale" json:"scale"`
	Remark    *string `db:"remark" json:"remark"`
	BrandName string  `db:"brand_name" json:"brand_name,omitempty"` // joined, not a column of collection
}
