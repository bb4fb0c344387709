package handler

import (
	"errors"
	"fmt"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetOrders(c *fiber.Ctx) error {
	filter := new(model.OrderFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var orders []model.Order
	if err := db.
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CreateOrder opens an order against a free table, captures one line per
// requested menu item at its current price, aggregates the total and marks
// the table occupied, all in one transaction. A request that names an
// unknown menu item fails whole, the same way an unknown table does.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("createOrderInput").(model.CreateOrderInput)

	db := database.DB
	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var table model.Table
	if err := tx.First(&table, input.TableId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Selected table does not exist", err)
	}
	if table.IsOccupied {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict,
			fmt.Sprintf("Table %d is already occupied", table.Number),
			errors.New("table unavailable"))
	}

	order := model.Order{
		PublicCode:   helper.GenerateOrderCode(),
		TableId:      table.ID,
		CustomerName: input.CustomerName,
		Status:       constants.ORDER_PENDING,
		TotalAmount:  0,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	for _, line := range input.Items {
		var menuItem model.MenuItem
		if err := tx.First(&menuItem, line.MenuItemId).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusNotFound,
				fmt.Sprintf("Menu item %d does not exist", line.MenuItemId), err)
		}

		orderItem := model.OrderItem{
			OrderId:    order.ID,
			MenuItemId: menuItem.ID,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	}

	total, err := helper.RecalculateOrderTotal(tx, order.ID)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	order.TotalAmount = total
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	table.IsOccupied = true
	if err := tx.Save(&table).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	log.Printf("Created order %s: table=%d, customer=%s, total=%.2f",
		order.PublicCode, table.Number, order.CustomerName, order.TotalAmount)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Order created successfully",
		"data":    order,
	})
}

// AddOrderItem appends a line to an existing order, or bumps the quantity
// of the line that already carries the menu item. A bumped line keeps the
// price it captured when it was first added; the order total is always
// re-aggregated from the lines.
func AddOrderItem(c *fiber.Ctx) error {
	orderId := c.Locals("orderId").(int)
	input := c.Locals("addOrderItemInput").(model.AddOrderItemInput)

	db := database.DB
	tx := db.Begin()

	var order model.Order
	if err := tx.First(&order, orderId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	var menuItem model.MenuItem
	if err := tx.First(&menuItem, input.MenuItemId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	var line model.OrderItem
	err := tx.Where("order_id = ? AND menu_item_id = ?", order.ID, menuItem.ID).First(&line).Error
	switch {
	case err == nil:
		line.Quantity += input.Quantity
		if err := tx.Save(&line).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = model.OrderItem{
			OrderId:    order.ID,
			MenuItemId: menuItem.ID,
			Quantity:   input.Quantity,
			Price:      menuItem.Price,
		}
		if err := tx.Create(&line).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	default:
		// a lookup failure is not "no line yet"
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	total, err := helper.RecalculateOrderTotal(tx, order.ID)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	order.TotalAmount = total
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Item added to order",
		"data":    order,
	})
}

// UpdateOrderStatus moves an order to any recognized status. A terminal
// status frees the order's table; re-clearing an already free table is
// harmless.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := c.Locals("orderId").(int)
	input := c.Locals("updateOrderStatusInput").(model.UpdateOrderStatusInput)

	db := database.DB
	tx := db.Begin()

	var order model.Order
	if err := tx.First(&order, orderId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	order.Status = input.Status
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if helper.IsTerminalStatus(input.Status) {
		if err := tx.Model(&model.Table{}).
			Where("id = ?", order.TableId).
			Update("is_occupied", false).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	log.Printf("Order %s moved to %s", order.PublicCode, order.Status)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Order status updated to %s", order.Status),
		"data":    order,
	})
}

// DeleteOrder is the administrative path: it removes the order with its
// lines, and frees the table when the order was still active.
func DeleteOrder(c *fiber.Ctx) error {
	orderId := c.Locals("inputId").(int)

	db := database.DB
	tx := db.Begin()

	var order model.Order
	if err := tx.First(&order, orderId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if !helper.IsTerminalStatus(order.Status) {
		if err := tx.Model(&model.Table{}).
			Where("id = ?", order.TableId).
			Update("is_occupied", false).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Order deleted",
	})
}
