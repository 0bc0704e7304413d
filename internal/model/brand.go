package model

// Brand is reference data; rows are deactivated, never deleted.
type Brand struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Type     string `db:"type" json:"type"` // e.g. "Diecast", "Diorama"
	IsActive int    `db:"isactive" json:"isactive"`
}
