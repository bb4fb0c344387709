package validate

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		input.Name = strings.TrimSpace(input.Name)
		input.Description = strings.TrimSpace(input.Description)
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createCategoryInput", input)

		return c.Next()
	}
}

func UpdateCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		var input model.UpdateCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("updateCategoryInput", input)
		c.Locals("categoryId", valueKey)
		return c.Next()
	}
}
