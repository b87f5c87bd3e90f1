package validate

import (
	"strconv"
	"strings"
	"time"
	"travel_manager/constants"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

// ParseBookingInput turns the untyped intake form into a typed input.
// A non-empty second return is the user-visible validation message; the
// record must not be created when it is set.
func ParseBookingInput(form map[string][]string) (model.BookingInput, string) {
	input := model.BookingInput{
		CustomerName:   strings.TrimSpace(utils.GetFirstValue(form, "customer_name")),
		Address:        strings.TrimSpace(utils.GetFirstValue(form, "address")),
		PaymentStatus:  utils.GetFirstValue(form, "payment_status"),
		MealPref:       strings.TrimSpace(utils.GetFirstValue(form, "meal_pref")),
		HotelGrade:     strings.TrimSpace(utils.GetFirstValue(form, "hotel_stars")),
		PricePerPerson: decimal.Zero,
		TotalMembers:   1,
	}

	if input.CustomerName == "" {
		return input, "Customer name is required."
	}

	if raw := strings.TrimSpace(utils.GetFirstValue(form, "tour_price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return input, "Tour price must be a number."
		}
		if price.IsNegative() {
			return input, "Tour price cannot be negative."
		}
		input.PricePerPerson = price
	}

	if raw := strings.TrimSpace(utils.GetFirstValue(form, "total_members")); raw != "" {
		members, err := strconv.Atoi(raw)
		if err != nil || members < 1 {
			return input, "Total members must be a positive whole number."
		}
		input.TotalMembers = members
	}

	if input.PaymentStatus == "" {
		input.PaymentStatus = constants.PAYMENT_PENDING
	}
	if err := validate.Struct(input); err != nil {
		return input, "Payment status is not a valid choice."
	}

	return input, ""
}

// NewBooking validates the intake form and stashes the typed input.
// Validation failures re-render the form with the message, creating
// nothing.
func NewBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).Render("booking_form", fiber.Map{
				"Error": "Could not read the submitted form.",
				"Form":  map[string]string{},
			})
		}

		input, msg := ParseBookingInput(form.Value)
		if msg != "" {
			return c.Status(fiber.StatusBadRequest).Render("booking_form", fiber.Map{
				"Error": msg,
				"Form":  flatten(form.Value),
			})
		}

		c.Locals("bookingInput", input)
		return c.Next()
	}
}

// ParseDateRange parses inclusive calendar-date bounds into the
// [start 00:00:00, end 23:59:59.999...] window.
func ParseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return now.With(start).BeginningOfDay(), now.With(end).EndOfDay(), nil
}

// DateRange requires valid start/end query dates on batch routes.
func DateRange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dr := model.DateRange{Start: c.Query("start"), End: c.Query("end")}
		if dr.Start == "" || dr.End == "" {
			return c.Status(fiber.StatusBadRequest).Render("report", fiber.Map{
				"Error": "Both start and end dates are required.",
				"Start": dr.Start, "End": dr.End,
			})
		}
		if err := validate.Struct(dr); err != nil {
			return c.Status(fiber.StatusBadRequest).Render("report", fiber.Map{
				"Error": "Dates must look like 2026-08-31.",
				"Start": dr.Start, "End": dr.End,
			})
		}

		start, end, err := ParseDateRange(dr.Start, dr.End)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).Render("report", fiber.Map{
				"Error": "Dates must look like 2026-08-31.",
				"Start": dr.Start, "End": dr.End,
			})
		}

		c.Locals("rangeStart", start)
		c.Locals("rangeEnd", end)
		c.Locals("rangeStartStr", dr.Start)
		c.Locals("rangeEndStr", dr.End)
		return c.Next()
	}
}

// BulkStatus collects the selected booking ids and requires at least
// one before the bulk update runs.
func BulkStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := model.BulkStatusInput{BookingIds: bookingIdsFromForm(c)}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "No bookings selected", nil)
		}
		c.Locals("bulkStatus", input)
		return c.Next()
	}
}

func bookingIdsFromForm(c *fiber.Ctx) []string {
	if form, err := c.MultipartForm(); err == nil {
		if ids := form.Value["booking_ids"]; len(ids) > 0 {
			return ids
		}
	}
	// Plain urlencoded form posts land here.
	var ids []string
	if args := c.Context().PostArgs(); args != nil {
		for _, v := range args.PeekMulti("booking_ids") {
			ids = append(ids, string(v))
		}
	}
	return ids
}

func flatten(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k := range values {
		out[k] = utils.GetFirstValue(values, k)
	}
	return out
}
