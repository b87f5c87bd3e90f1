package main

import (
	"travel_manager/config"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/logger"
	"travel_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
)

func main() {
	engine := html.New("./templates", ".html")

	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 20 * 1024 * 1024, // passport scans
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:8000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, HX-Request",
		AllowCredentials: true,
	}))

	database.ConnectDB()

	cld := helper.InitCloudinary()
	helper.StartMaintenanceScheduler(cld)
	defer helper.StopMaintenanceScheduler()

	router.SetupRoutes(app, cld)

	addr := ":" + config.ConfigDefault("APP_PORT", "8000")
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", err)
	}
}
