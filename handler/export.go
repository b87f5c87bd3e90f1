package handler

import (
	"fmt"
	"strconv"
	"time"
	"travel_manager/config"
	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"
	"travel_manager/validate"

	"github.com/gofiber/fiber/v2"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBookings streams the whole table as a styled spreadsheet.
func ExportBookings(c *fiber.Ctx) error {
	var bookings model.Bookings
	if err := database.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	workbook, err := utils.BuildBookingWorkbook(bookings)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, xlsxMime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Razak_Sons_Bookings.xlsx"`)
	return c.Send(buf.Bytes())
}

// BatchReport shows revenue and pax sums for an inclusive date range.
// Without any dates it renders the range picker; a half-given or
// malformed range is a 400, an empty result a 404.
func BatchReport(c *fiber.Ctx) error {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" && endStr == "" {
		return c.Render("report", fiber.Map{"Start": "", "End": ""})
	}
	if startStr == "" || endStr == "" {
		return c.Status(fiber.StatusBadRequest).Render("report", fiber.Map{
			"Error": "Both start and end dates are required.",
			"Start": startStr, "End": endStr,
		})
	}
	start, end, err := validate.ParseDateRange(startStr, endStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render("report", fiber.Map{
			"Error": "Dates must look like 2026-08-31.",
			"Start": startStr, "End": endStr,
		})
	}

	db := database.DB
	bookings, err := helper.BookingsInRange(db, start, end)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(bookings) == 0 {
		return c.Status(fiber.StatusNotFound).Render("report", fiber.Map{
			"Error": fmt.Sprintf("No bookings between %s and %s.", startStr, endStr),
			"Start": startStr, "End": endStr,
		})
	}

	revenue, pax, err := helper.RangeTotals(db, start, end)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Render("report", fiber.Map{
		"Bookings":     bookings,
		"Start":        startStr,
		"End":          endStr,
		"RevenueTotal": constants.CURRENCY_SIGN + utils.FormatWithThousands(revenue),
		"PaxTotal":     utils.FormatCountWithThousands(pax),
	})
}

// BatchExport bundles one voucher per matched booking into a zip named
// after the range. Assembly is in memory, so the range is capped.
func BatchExport(c *fiber.Ctx) error {
	start, _ := c.Locals("rangeStart").(time.Time)
	end, _ := c.Locals("rangeEnd").(time.Time)
	startStr, _ := c.Locals("rangeStartStr").(string)
	endStr, _ := c.Locals("rangeEndStr").(string)

	bookings, err := helper.BookingsInRange(database.DB, start, end)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(bookings) == 0 {
		return c.Status(fiber.StatusNotFound).Render("report", fiber.Map{
			"Error": fmt.Sprintf("No bookings between %s and %s.", startStr, endStr),
			"Start": startStr, "End": endStr,
		})
	}
	if len(bookings) > exportMaxBookings() {
		return c.Status(fiber.StatusBadRequest).Render("report", fiber.Map{
			"Error": fmt.Sprintf("The range matches %d bookings; the archive is capped at %d. Pick a narrower range.", len(bookings), exportMaxBookings()),
			"Start": startStr, "End": endStr,
		})
	}

	archive, err := utils.BuildBackupArchive(bookings)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	filename := fmt.Sprintf("RazakSons_Backup_%s_to_%s.zip", startStr, endStr)
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(archive)
}

func exportMaxBookings() int {
	if v, err := strconv.Atoi(config.Config("EXPORT_MAX_BOOKINGS")); err == nil && v > 0 {
		return v
	}
	return constants.EXPORT_MAX_BOOKINGS_DEFAULT
}
