package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handler.HealthCheck)
	app.Get("/debug/data", handler.DebugData)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	category := v1.Group("/category")
	category.Get("/", handler.GetCategories)
	category.Get("/:categoryId", validate.GetById("categoryId"), handler.GetCategoryById)
	category.Post("/", validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", validate.UpdateCategory("categoryId"), handler.UpdateCategory)
	category.Delete("/:categoryId", validate.GetById("categoryId"), handler.DeleteCategory)

	menu := v1.Group("/menu")
	menu.Get("/", handler.GetMenu)
	menu.Get("/:menuItemId", validate.GetById("menuItemId"), handler.GetMenuItemById)
	menu.Post("/", validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:menuItemId", validate.UpdateMenuItem("menuItemId"), handler.UpdateMenuItem)
	menu.Delete("/:menuItemId", validate.GetById("menuItemId"), handler.DeleteMenuItem)

	table := v1.Group("/table")
	table.Get("/", handler.GetTables)
	table.Get("/available", handler.GetAvailableTables)
	table.Get("/:tableId", validate.GetById("tableId"), handler.GetTableById)
	table.Post("/", validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", validate.UpdateTable("tableId"), handler.UpdateTable)
	table.Delete("/:tableId", validate.GetById("tableId"), handler.DeleteTable)

	order := v1.Group("/order")
	order.Get("/", handler.GetOrders)
	order.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderById)
	order.Post("/", validate.CreateOrder(), handler.CreateOrder)
	order.Post("/:orderId/items", validate.AddOrderItem("orderId"), handler.AddOrderItem)
	order.Patch("/:orderId/status", validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	order.Delete("/:orderId", validate.GetById("orderId"), handler.DeleteOrder)

	v1.Get("/dashboard", handler.GetDashboardStats)
}
