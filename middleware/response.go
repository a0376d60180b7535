package middleware

import (
	"errors"
	"log"

	"upskill/services"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", fields)
}

// ErrorResponse maps a service error onto its HTTP status. Anything that is not
// a known service error is logged and answered with 500 without details.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return ValidationErrorResponse(c, verr.Fields)
	}

	var serr *services.ServiceError
	if errors.As(err, &serr) {
		switch {
		case errors.Is(serr, services.ErrNotFound):
			return JsonResponse(c, fiber.StatusNotFound, false, serr.Message, nil)
		case errors.Is(serr, services.ErrConflict):
			return JsonResponse(c, fiber.StatusConflict, false, serr.Message, nil)
		}
	}

	log.Printf("[ERROR] %s %s request_id=%v: %v", c.Method(), c.Path(), c.Locals(RequestIDKey), err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error!", nil)
}
