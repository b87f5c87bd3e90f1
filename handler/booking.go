package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/logger"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func NewBookingForm(c *fiber.Ctx) error {
	return c.Render("booking_form", fiber.Map{"Form": map[string]string{}})
}

// formEcho re-fills the form after a failed save.
func formEcho(input model.BookingInput) map[string]string {
	return map[string]string{
		"customer_name":  input.CustomerName,
		"address":        input.Address,
		"tour_price":     input.PricePerPerson.String(),
		"total_members":  fmt.Sprintf("%d", input.TotalMembers),
		"payment_status": input.PaymentStatus,
		"meal_pref":      input.MealPref,
		"hotel_stars":    input.HotelGrade,
	}
}

// CreateBooking persists the validated intake. The stored tour_price is
// always per-person price times party size. Row and photo association
// commit together; any failure rolls the whole thing back and the
// already-uploaded file is destroyed.
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("bookingInput").(model.BookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA, errors.New("bookingInput missing from locals"))
	}
	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("storage client missing from locals"))
	}

	var photo *multipart.FileHeader
	if f, err := c.FormFile("passport_photo"); err == nil {
		photo = f
	}

	operator := helper.GetInfoOperatorFromToken(c)
	total := input.PricePerPerson.Mul(decimal.NewFromInt(int64(input.TotalMembers)))

	info := datatypes.JSONMap{
		constants.INFO_PRICE_PER_PERSON: constants.CURRENCY_SIGN + utils.FormatWithThousands(input.PricePerPerson),
		constants.INFO_MEAL_PREFERENCE:  input.MealPref,
		constants.INFO_HOTEL_GRADE:      input.HotelGrade,
		constants.INFO_CREATED_BY:       operator.Username,
		constants.INFO_ENTRY_METHOD:     constants.ENTRY_DASHBOARD_FORM,
	}

	var booking model.Booking
	copier.Copy(&booking, &input)
	booking.TourPrice = total
	booking.AdditionalInfo = info

	// Upload before the transaction so a storage failure creates no row,
	// and a rolled-back row leaves no file behind.
	var photoPublicId string
	if photo != nil {
		url, publicId, err := helper.UploadPassportPhoto(cld, photo, input.CustomerName)
		if err != nil {
			logger.Error("passport upload failed", err)
			return c.Status(fiber.StatusInternalServerError).Render("booking_form", fiber.Map{
				"Error": constants.BOOKING_SAVE_FAILED,
				"Form":  formEcho(input),
			})
		}
		booking.PassportPhoto = &url
		booking.PhotoPublicId = &publicId
		photoPublicId = publicId
	}

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			booking.BookingId = helper.GenerateUniqueBookingId(tx)
			return tx.Create(&booking).Error
		})
		// A lost insert race on the unique index just means draw again.
		if helper.IsDuplicateBookingId(err) {
			booking.ID = 0
			continue
		}
		break
	}
	if err != nil {
		logger.Error("booking create failed", err)
		if photoPublicId != "" {
			helper.DestroyPassportPhoto(cld, photoPublicId)
		}
		return c.Status(fiber.StatusInternalServerError).Render("booking_form", fiber.Map{
			"Error": constants.BOOKING_SAVE_FAILED,
			"Form":  formEcho(input),
		})
	}

	helper.SetFlash(c, "success", fmt.Sprintf("Booking %s for %s created.", booking.BookingId, booking.CustomerName))
	return c.Redirect("/dashboard/", fiber.StatusFound)
}

func BookingDetail(c *fiber.Ctx) error {
	bookingId, _ := c.Locals("bookingId").(string)

	booking, err := helper.GetBookingByBookingId(database.DB, bookingId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if booking == nil {
		return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{
			"BookingId": bookingId,
		})
	}

	return c.Render("booking_detail", fiber.Map{
		"Booking":   booking,
		"PriceText": constants.CURRENCY_SIGN + utils.FormatWithThousands(booking.TourPrice),
	})
}

// DeleteBooking removes the row permanently, then destroys the stored
// photo. The destroy runs after commit so the store never waits on the
// file backend; failed destroys are queued for the hourly sweep.
func DeleteBooking(c *fiber.Ctx) error {
	bookingId, _ := c.Locals("bookingId").(string)
	cld, _ := c.Locals("cld").(*cloudinary.Cloudinary)

	db := database.DB
	booking, err := helper.GetBookingByBookingId(db, bookingId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if booking == nil {
		return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{
			"BookingId": bookingId,
		})
	}

	if err := db.Delete(&model.Booking{}, booking.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.PhotoPublicId != nil && cld != nil {
		helper.DestroyPassportPhoto(cld, *booking.PhotoPublicId)
	}

	helper.SetFlash(c, "success", fmt.Sprintf("Booking for %s has been successfully removed.", booking.CustomerName))
	return c.Redirect("/dashboard/", fiber.StatusFound)
}

// BulkMarkPaid flips the selected bookings to Paid.
func BulkMarkPaid(c *fiber.Ctx) error {
	input, ok := c.Locals("bulkStatus").(model.BulkStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No bookings selected", nil)
	}

	result := database.DB.Model(&model.Booking{}).
		Where("booking_id IN ?", input.BookingIds).
		Update("payment_status", constants.PAYMENT_PAID)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	helper.SetFlash(c, "success", fmt.Sprintf("%d booking(s) marked as Paid.", result.RowsAffected))
	return c.Redirect("/dashboard/", fiber.StatusFound)
}
