package handler

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetTables(c *fiber.Ctx) error {
	var tables []model.Table
	if err := database.DB.Order("number").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func GetAvailableTables(c *fiber.Ctx) error {
	var tables []model.Table
	if err := database.DB.Where("is_occupied = ?", false).Order("number").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func GetTableById(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("createTableInput").(model.CreateTableInput)

	db := database.DB

	var existing model.Table
	if err := db.Where("number = ?", *input.Number).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict,
			fmt.Sprintf("Table %d already exists! Please choose a different number", *input.Number), nil)
	}

	table := model.Table{
		Number:   *input.Number,
		Capacity: input.Capacity,
	}

	if err := db.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": fmt.Sprintf("Table %d added successfully", table.Number),
		"data":    table,
	})
}

// UpdateTable also lets staff override the occupied flag directly.
func UpdateTable(c *fiber.Ctx) error {
	tableId := c.Locals("tableId").(int)
	input := c.Locals("updateTableInput").(model.UpdateTableInput)

	db := database.DB

	var table model.Table
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
	}

	if input.Number != nil && *input.Number != table.Number {
		var existing model.Table
		if err := db.Where("number = ? AND id <> ?", *input.Number, table.ID).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict,
				fmt.Sprintf("Table %d already exists! Please choose a different number", *input.Number), nil)
		}
		table.Number = *input.Number
	}
	if input.Capacity != nil {
		table.Capacity = *input.Capacity
	}
	if input.IsOccupied != nil {
		table.IsOccupied = *input.IsOccupied
	}

	if err := db.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Table %d updated successfully", table.Number),
		"data":    table,
	})
}

// DeleteTable removes a table unless it still has orders in a non-terminal
// status.
func DeleteTable(c *fiber.Ctx) error {
	tableId := c.Locals("inputId").(int)

	db := database.DB
	tx := db.Begin()

	var table model.Table
	if err := tx.First(&table, tableId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
	}

	if count := helper.CountActiveOrdersForTable(tx, table.ID); count > 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot delete table %d. It has active orders", table.Number),
			errors.New("table has active orders"))
	}

	if err := tx.Delete(&table).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Table %d deleted successfully", table.Number),
	})
}
