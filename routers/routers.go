// Package routers assembles the HTTP application from its feature routes.
package routers

import (
	"time"

	"upskill/config"
	enrollmentController "upskill/controllers/enrollment"
	statisticsController "upskill/controllers/statistics"
	trackController "upskill/controllers/track"
	userController "upskill/controllers/userControllers"
	"upskill/middleware"
	"upskill/repositories"
	"upskill/routers/enrollmentRoutes"
	"upskill/routers/statisticsRoutes"
	"upskill/routers/trackRoutes"
	"upskill/routers/userRoutes"
	"upskill/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and controllers on top of db and returns
// a Fiber app with every route registered. now may be nil to use the wall clock.
func NewApp(cfg *config.Config, db *gorm.DB, now func() time.Time) *fiber.App {
	userRepo := repositories.NewUserRepository(db)
	trackRepo := repositories.NewTrackRepository(db)
	enrollmentRepo := repositories.NewEnrollmentRepository(db)

	userService := services.NewUserService(userRepo, now)
	trackService := services.NewTrackService(trackRepo)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, userRepo, trackRepo, now)
	statisticsService := services.NewStatisticsService(userRepo, trackRepo, enrollmentRepo, cfg.TopTracksLimit)

	app := fiber.New(fiber.Config{
		AppName: "upskill",
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(middleware.RequestID())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Request-ID",
	}))

	// Log every request with its id
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} request_id=${locals:requestId}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Database unavailable!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	userRoutes.SetupUserRoutes(app, userController.NewUserController(userService))
	trackRoutes.SetupTrackRoutes(app, trackController.NewTrackController(trackService))
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.NewEnrollmentController(enrollmentService))
	statisticsRoutes.SetupStatisticsRoutes(app, statisticsController.NewStatisticsController(statisticsService))

	// Serve static files last so they never shadow the API
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	return app
}
