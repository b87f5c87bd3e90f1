package router

import (
	"travel_manager/handler"
	"travel_manager/middleware"
	"travel_manager/validate"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, cld *cloudinary.Cloudinary) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard/", fiber.StatusFound)
	})

	app.Get("/login", handler.LoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	app.Get("/forgot-password", handler.ForgotPasswordPage)
	app.Post("/forgot-password", handler.ForgotPassword)
	app.Get("/reset-password", handler.ResetPasswordPage)
	app.Post("/reset-password", handler.ResetPassword)

	dashboard := app.Group("/dashboard", logger.New(), middleware.Protected())
	dashboard.Get("/", handler.Dashboard)
	dashboard.Get("/new", handler.NewBookingForm)
	dashboard.Post("/new", middleware.WithCloudinary(cld), validate.NewBooking(), handler.CreateBooking)
	dashboard.Get("/export", handler.ExportBookings)
	dashboard.Get("/report", handler.BatchReport)
	dashboard.Get("/report/download", validate.DateRange(), handler.BatchExport)
	dashboard.Get("/view/:bookingId", validate.GetBookingId("bookingId"), handler.BookingDetail)
	dashboard.Post("/delete/:bookingId", middleware.WithCloudinary(cld), validate.GetBookingId("bookingId"), handler.DeleteBooking)
	dashboard.Post("/status", validate.BulkStatus(), handler.BulkMarkPaid)
}
