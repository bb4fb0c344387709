package model

type Table struct {
	DTO
	Number     int     `gorm:"unique;not null" json:"number"`
	Capacity   int     `gorm:"not null" json:"capacity"`
	IsOccupied bool    `gorm:"default:false" json:"isOccupied"`
	Orders     []Order `gorm:"foreignKey:TableId" json:"-"`
}

// Number 0 is reserved for takeaway, so it stays a pointer to keep
// "missing" distinguishable from zero.
type CreateTableInput struct {
	Number   *int `json:"number" validate:"required,min=0"`
	Capacity int  `json:"capacity" validate:"required,min=1,max=20"`
}

type UpdateTableInput struct {
	Number     *int  `json:"number" validate:"omitempty,min=0"`
	Capacity   *int  `json:"capacity" validate:"omitempty,min=1,max=20"`
	IsOccupied *bool `json:"isOccupied" validate:"omitempty"`
}
