package handler

import (
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck pings the database so load balancers see connectivity
// problems, not just process liveness.
func HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := database.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Database unreachable", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"database": "ok",
		"time":     time.Now().UTC(),
	})
}

// DebugData reports row counts and short summaries for every entity.
func DebugData(c *fiber.Ctx) error {
	db := database.DB

	var counts struct {
		Categories int64 `json:"categories"`
		MenuItems  int64 `json:"menuItems"`
		Tables     int64 `json:"tables"`
		Orders     int64 `json:"orders"`
		OrderItems int64 `json:"orderItems"`
	}
	db.Model(&model.Category{}).Count(&counts.Categories)
	db.Model(&model.MenuItem{}).Count(&counts.MenuItems)
	db.Model(&model.Table{}).Count(&counts.Tables)
	db.Model(&model.Order{}).Count(&counts.Orders)
	db.Model(&model.OrderItem{}).Count(&counts.OrderItems)

	var tables []model.Table
	db.Order("number").Find(&tables)

	var categories []model.Category
	db.Order("name").Find(&categories)

	var menuItems []model.MenuItem
	db.Preload("Category").Order("name").Find(&menuItems)

	var orders []model.Order
	db.Preload("Table").Order("created_at desc").Find(&orders)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"counts":     counts,
		"tables":     tables,
		"categories": categories,
		"menuItems":  menuItems,
		"orders":     orders,
	})
}
