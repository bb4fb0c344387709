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
	"github.com/jinzhu/copier"
)

type menuItemView struct {
	Id          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	ImageUrl    *string `json:"imageUrl,omitempty"`
}

func toMenuItemView(item model.MenuItem) menuItemView {
	categoryName := "Unknown"
	if item.Category != nil {
		categoryName = item.Category.Name
	}
	return menuItemView{
		Id:          item.ID,
		Name:        item.Name,
		Slug:        item.Slug,
		Description: item.Description,
		Price:       item.Price,
		Category:    categoryName,
		Available:   item.IsAvailable,
		ImageUrl:    item.ImageUrl,
	}
}

// GetMenu returns the catalog, optionally narrowed to available items or a
// single category.
func GetMenu(c *fiber.Ctx) error {
	filter := new(model.MenuFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.MenuItem{})
	if filter.Available != nil {
		db = db.Where("is_available = ?", *filter.Available)
	}
	if filter.CategoryId != nil {
		db = db.Where("category_id = ?", *filter.CategoryId)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var menuItems []model.MenuItem
	if err := db.Preload("Category").Order("name").Find(&menuItems).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	views := make([]menuItemView, 0, len(menuItems))
	for _, item := range menuItems {
		views = append(views, toMenuItemView(item))
	}

	response := &model.ResponseCustom{
		Rows:       views,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMenuItemById(c *fiber.Ctx) error {
	menuItemId := c.Locals("inputId").(int)

	var menuItem model.MenuItem
	if err := database.DB.Preload("Category").First(&menuItem, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, menuItem)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("createMenuItemInput").(model.CreateMenuItemInput)

	db := database.DB

	var category model.Category
	if err := db.First(&category, input.CategoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category does not exist", err)
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	menuItem := model.MenuItem{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueMenuItemSlug(db, input.Name),
		Description: input.Description,
		Price:       input.Price,
		CategoryId:  input.CategoryId,
		IsAvailable: isAvailable,
		ImageUrl:    input.ImageUrl,
	}

	if err := db.Create(&menuItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Menu item added successfully",
		"data":    menuItem,
	})
}

func UpdateMenuItem(c *fiber.Ctx) error {
	menuItemId := c.Locals("menuItemId").(int)
	input := c.Locals("updateMenuItemInput").(model.UpdateMenuItemInput)

	db := database.DB

	var menuItem model.MenuItem
	if err := db.First(&menuItem, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := db.First(&category, *input.CategoryId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category does not exist", err)
		}
	}

	renamed := input.Name != nil && *input.Name != menuItem.Name

	if err := copier.CopyWithOption(&menuItem, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if renamed {
		menuItem.Slug = helper.GenerateUniqueMenuItemSlug(db, menuItem.Name)
	}

	if err := db.Save(&menuItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Menu item updated successfully",
		"data":    menuItem,
	})
}

// DeleteMenuItem removes a dish unless a non-terminal order still
// references it.
func DeleteMenuItem(c *fiber.Ctx) error {
	menuItemId := c.Locals("inputId").(int)

	db := database.DB
	tx := db.Begin()

	var menuItem model.MenuItem
	if err := tx.First(&menuItem, menuItemId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	if count := helper.CountActiveReferencesForMenuItem(tx, menuItem.ID); count > 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot delete %q. It is on %d active order line(s)", menuItem.Name, count),
			errors.New("menu item referenced by active orders"))
	}

	if err := tx.Delete(&menuItem).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Menu item deleted successfully",
	})
}
