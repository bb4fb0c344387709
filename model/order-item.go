package model

type OrderItem struct {
	DTO
	OrderId    uint      `gorm:"not null" json:"orderId"`
	MenuItemId uint      `gorm:"not null" json:"menuItemId"`
	MenuItem   *MenuItem `json:"menuItem,omitempty"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"` // captured when the line is added
}
