package enrollmentController

import (
	"fmt"

	"upskill/dto"
	"upskill/middleware"
	"upskill/models"
	"upskill/services"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentController struct {
	Enrollments *services.EnrollmentService
}

func NewEnrollmentController(enrollments *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments}
}

// GetEnrollments lists every enrollment, or only those of one user or one track when filtered.
func (ctrl *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	var (
		rows []models.EnrollmentDetail
		err  error
	)
	ctx := c.UserContext()

	if userID, ok := c.Locals("userID").(uint); ok {
		rows, err = ctrl.Enrollments.GetByUser(ctx, userID)
	} else if trackID, ok := c.Locals("trackID").(uint); ok {
		rows, err = ctrl.Enrollments.GetByTrack(ctx, trackID)
	} else {
		rows, err = ctrl.Enrollments.GetAll(ctx)
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", dto.NewEnrollmentResponses(rows))
}

func (ctrl *EnrollmentController) GetEnrollment(c *fiber.Ctx) error {
	detail, err := ctrl.Enrollments.GetByID(c.UserContext(), c.Locals("enrollmentID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", dto.NewEnrollmentResponse(detail))
}

func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnroll").(*dto.EnrollRequest)

	detail, err := ctrl.Enrollments.Enroll(c.UserContext(), reqData.UserID, reqData.TrackID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	c.Location(fmt.Sprintf("/api/v2/enrollments/%d", detail.ID))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment created successfully!", dto.NewEnrollmentResponse(detail))
}

func (ctrl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnrollmentUpdate").(*dto.UpdateEnrollmentRequest)

	detail, err := ctrl.Enrollments.UpdateProgress(c.UserContext(), c.Locals("enrollmentID").(uint), reqData.Progress, reqData.Rating)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", dto.NewEnrollmentResponse(detail))
}

func (ctrl *EnrollmentController) CompleteEnrollment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnrollmentComplete").(*dto.CompleteEnrollmentRequest)

	detail, err := ctrl.Enrollments.Complete(c.UserContext(), c.Locals("enrollmentID").(uint), reqData.Rating)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment completed successfully!", dto.NewEnrollmentResponse(detail))
}

func (ctrl *EnrollmentController) CancelEnrollment(c *fiber.Ctx) error {
	detail, err := ctrl.Enrollments.Cancel(c.UserContext(), c.Locals("enrollmentID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", dto.NewEnrollmentResponse(detail))
}

func (ctrl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	if err := ctrl.Enrollments.Delete(c.UserContext(), c.Locals("enrollmentID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
