package model

type Category struct {
	DTO
	Name        string     `gorm:"size:100;not null" json:"name"`
	Slug        string     `gorm:"size:120;uniqueIndex" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	MenuItems   []MenuItem `gorm:"foreignKey:CategoryId" json:"menuItems,omitempty"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}
