package statisticsRoutes

import (
	statisticsController "upskill/controllers/statistics"

	"github.com/gofiber/fiber/v2"
)

func SetupStatisticsRoutes(app *fiber.App, ctrl *statisticsController.StatisticsController) {
	app.Get("/api/v2/statistics", ctrl.GetStatistics)
}
