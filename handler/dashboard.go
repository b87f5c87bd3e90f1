package handler

import (
	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Dashboard lists bookings with the free-text search plus the traveler
// and unpaid aggregates. HTMX requests get only the row fragment; the
// query logic is the same either way.
func Dashboard(c *fiber.Ctx) error {
	db := database.DB
	term := c.Query("search")

	bookings, err := helper.SearchBookings(db, term)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	travelers, err := helper.TotalTravelers(db, term)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	unpaid, err := helper.UnpaidCount(db, term)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	data := fiber.Map{
		"Bookings":       bookings,
		"TotalTravelers": travelers,
		"UnpaidCount":    unpaid,
		"Search":         term,
	}

	if c.Get("HX-Request") != "" {
		return c.Render("partials/booking_rows", data)
	}

	level, message := helper.PopFlash(c)
	data["FlashLevel"] = level
	data["FlashMessage"] = message
	data["Operator"] = helper.GetInfoOperatorFromToken(c).Username
	return c.Render("dashboard", data)
}
