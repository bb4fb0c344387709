package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GenerateOrderCode() string {
	return "ORD-" + uuid.New().String()[:8]
}

// IsTerminalStatus reports whether status ends an order's active lifecycle
// and frees its table.
func IsTerminalStatus(status string) bool {
	return status == constants.ORDER_DELIVERED || status == constants.ORDER_CANCELLED
}

// RecalculateOrderTotal re-aggregates the order total from its lines.
// Every mutation path goes through this instead of incremental arithmetic,
// so the stored total can never drift from the lines.
func RecalculateOrderTotal(tx *gorm.DB, orderId uint) (float64, error) {
	var total float64
	err := tx.Model(&model.OrderItem{}).
		Where("order_id = ?", orderId).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error
	return total, err
}

// CountActiveOrdersForTable counts orders still holding the table.
func CountActiveOrdersForTable(tx *gorm.DB, tableId uint) int64 {
	var count int64
	tx.Model(&model.Order{}).
		Where("table_id = ? AND status IN ?", tableId, constants.ORDER_ACTIVE_STATUSES).
		Count(&count)
	return count
}

// CountActiveReferencesForMenuItem counts lines of non-terminal orders that
// reference the menu item.
func CountActiveReferencesForMenuItem(tx *gorm.DB, menuItemId uint) int64 {
	var count int64
	tx.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.menu_item_id = ? AND orders.status IN ?", menuItemId, constants.ORDER_ACTIVE_STATUSES).
		Count(&count)
	return count
}
