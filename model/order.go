package model

type Order struct {
	DTO
	PublicCode   string      `gorm:"unique;size:20" json:"publicCode"` // ORD-XXXXXXXX
	TableId      uint        `gorm:"not null" json:"tableId"`
	Table        Table       `json:"table"`
	CustomerName string      `gorm:"size:100;not null" json:"customerName"`
	Status       string      `gorm:"size:20;default:pending" json:"status"` // pending, preparing, ready, delivered, cancelled
	TotalAmount  float64     `gorm:"type:decimal(10,2);default:0" json:"totalAmount"`
	Items        []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

type OrderLineInput struct {
	MenuItemId uint `json:"menuItemId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderInput struct {
	TableId      uint             `json:"tableId" validate:"required"`
	CustomerName string           `json:"customerName" validate:"required,min=1,max=100"`
	Items        []OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

type AddOrderItemInput struct {
	MenuItemId uint `json:"menuItemId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready delivered cancelled"`
}

type OrderFilter struct {
	Pagination
	Status *string `json:"status"`
}
