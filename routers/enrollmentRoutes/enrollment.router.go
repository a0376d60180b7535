package enrollmentRoutes

import (
	enrollmentController "upskill/controllers/enrollment"
	enrollmentValidator "upskill/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes registers the enrollment lifecycle endpoints
func SetupEnrollmentRoutes(app *fiber.App, ctrl *enrollmentController.EnrollmentController) {
	enrollmentGroup := app.Group("/api/v2/enrollments")

	// Listing, optionally filtered
	enrollmentGroup.Get("/", enrollmentValidator.ListFilter(), ctrl.GetEnrollments)
	enrollmentGroup.Get("/user/:userId", enrollmentValidator.UserID(), ctrl.GetEnrollments)
	enrollmentGroup.Get("/track/:trackId", enrollmentValidator.TrackID(), ctrl.GetEnrollments)
	enrollmentGroup.Get("/:id", enrollmentValidator.EnrollmentID(), ctrl.GetEnrollment)

	// Status transitions
	enrollmentGroup.Post("/enroll", enrollmentValidator.Enroll(), ctrl.Enroll)
	enrollmentGroup.Patch("/:id", enrollmentValidator.EnrollmentID(), enrollmentValidator.UpdateEnrollment(), ctrl.UpdateEnrollment)
	enrollmentGroup.Post("/:id/complete", enrollmentValidator.EnrollmentID(), enrollmentValidator.CompleteEnrollment(), ctrl.CompleteEnrollment)
	enrollmentGroup.Post("/:id/cancel", enrollmentValidator.EnrollmentID(), ctrl.CancelEnrollment)

	enrollmentGroup.Delete("/:id", enrollmentValidator.EnrollmentID(), ctrl.DeleteEnrollment)
}
