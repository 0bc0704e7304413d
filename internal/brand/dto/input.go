package dto

type CreateBrandInput struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

type UpdateBrandInput struct {
	ID       int    `json:"-"`
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	IsActive int    `json:"isactive"`
}
