package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardStats(c *fiber.Ctx) error {
	db := database.DB

	type Stats struct {
		TotalOrders    int64         `json:"totalOrders"`
		PendingOrders  int64         `json:"pendingOrders"`
		TotalRevenue   float64       `json:"totalRevenue"`
		TotalMenuItems int64         `json:"totalMenuItems"`
		RecentOrders   []model.Order `json:"recentOrders"`
	}

	var stats Stats
	db.Model(&model.Order{}).Count(&stats.TotalOrders)
	db.Model(&model.Order{}).Where("status = ?", constants.ORDER_PENDING).Count(&stats.PendingOrders)
	db.Model(&model.MenuItem{}).Count(&stats.TotalMenuItems)

	if err := db.Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.
		Preload("Table").
		Order("created_at desc").
		Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
