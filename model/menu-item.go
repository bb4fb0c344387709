package model

type MenuItem struct {
	DTO
	Name        string    `gorm:"size:200;not null" json:"name"`
	Slug        string    `gorm:"size:220;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryId  uint      `gorm:"not null" json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	// no column default: GORM would drop a false value from the INSERT
	IsAvailable bool      `json:"isAvailable"`
	ImageUrl    *string   `gorm:"size:500" json:"imageUrl,omitempty"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	CategoryId  uint    `json:"categoryId" validate:"required"`
	IsAvailable *bool   `json:"isAvailable" validate:"omitempty"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,max=500"`
}

type UpdateMenuItemInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	CategoryId  *uint    `json:"categoryId" validate:"omitempty"`
	IsAvailable *bool    `json:"isAvailable" validate:"omitempty"`
	ImageUrl    *string  `json:"imageUrl" validate:"omitempty,max=500"`
}

type MenuFilter struct {
	Pagination
	Available  *bool `json:"available"`
	CategoryId *uint `json:"categoryId"`
}
