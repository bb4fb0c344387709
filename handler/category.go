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

func GetCategories(c *fiber.Ctx) error {
	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Category{})

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var categories []model.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       categories,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCategoryById(c *fiber.Ctx) error {
	categoryId := c.Locals("inputId").(int)

	var category model.Category
	if err := database.DB.Preload("MenuItems").First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func CreateCategory(c *fiber.Ctx) error {
	input := c.Locals("createCategoryInput").(model.CreateCategoryInput)

	db := database.DB

	// uniqueness is an application-level check, same as the duplicate-name
	// handling on the add form
	var existing model.Category
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Category %q already exists", input.Name), nil)
	}

	category := model.Category{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueCategorySlug(db, input.Name),
		Description: input.Description,
	}

	if err := db.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Category added successfully",
		"data":    category,
	})
}

func UpdateCategory(c *fiber.Ctx) error {
	categoryId := c.Locals("categoryId").(int)
	input := c.Locals("updateCategoryInput").(model.UpdateCategoryInput)

	db := database.DB

	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	if input.Name != nil && *input.Name != category.Name {
		var existing model.Category
		if err := db.Where("name = ? AND id <> ?", *input.Name, category.ID).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, fmt.Sprintf("Category %q already exists", *input.Name), nil)
		}
		category.Name = *input.Name
		category.Slug = helper.GenerateUniqueCategorySlug(db, *input.Name)
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	if err := db.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Category updated successfully",
		"data":    category,
	})
}

func DeleteCategory(c *fiber.Ctx) error {
	categoryId := c.Locals("inputId").(int)

	db := database.DB

	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	var menuItems int64
	db.Model(&model.MenuItem{}).Where("category_id = ?", category.ID).Count(&menuItems)
	if menuItems > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot delete category %q. It still owns %d menu item(s)", category.Name, menuItems),
			errors.New("category has menu items"))
	}

	if err := db.Delete(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Category deleted successfully",
	})
}
