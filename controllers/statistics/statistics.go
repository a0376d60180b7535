package statisticsController

import (
	"upskill/dto"
	"upskill/middleware"
	"upskill/services"

	"github.com/gofiber/fiber/v2"
)

type StatisticsController struct {
	Statistics *services.StatisticsService
}

func NewStatisticsController(statistics *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Statistics: statistics}
}

func (ctrl *StatisticsController) GetStatistics(c *fiber.Ctx) error {
	stats, err := ctrl.Statistics.Compute(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", dto.NewStatisticsResponse(stats))
}
