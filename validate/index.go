package validate

import (
	"travel_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetBookingId checks the path parameter and stashes it in Locals.
func GetBookingId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingId := c.Params(key)
		if bookingId == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing booking id", nil)
		}

		c.Locals("bookingId", bookingId)
		return c.Next()
	}
}
