package validate

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("createTableInput", input)

		return c.Next()
	}
}

func UpdateTable(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		var input model.UpdateTableInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("updateTableInput", input)
		c.Locals("tableId", valueKey)
		return c.Next()
	}
}
