package enrollmentValidator

import (
	"strconv"
	"strings"

	"upskill/dto"
	"upskill/middleware"
	"upskill/validators/common"

	"github.com/gofiber/fiber/v2"
)

func EnrollmentID() fiber.Handler {
	return common.ID("id", "enrollmentID", "Enrollment")
}

func UserID() fiber.Handler {
	return common.ID("userId", "userID", "User")
}

func TrackID() fiber.Handler {
	return common.ID("trackId", "trackID", "Track")
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.EnrollRequest)
		if ok, err := common.ParseBody(c, reqData, false); !ok {
			return err
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func UpdateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.UpdateEnrollmentRequest)
		if ok, err := common.ParseBody(c, reqData, false); !ok {
			return err
		}

		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}

// CompleteEnrollment accepts an empty body; the rating is optional
func CompleteEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.CompleteEnrollmentRequest)
		if ok, err := common.ParseBody(c, reqData, true); !ok {
			return err
		}

		c.Locals("validatedEnrollmentComplete", reqData)
		return c.Next()
	}
}

// ListFilter validates the optional user_id and track_id query filters
func ListFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		userID, ok := optionalID(c.Query("user_id"))
		if !ok {
			errors["user_id"] = "user_id must be a positive integer!"
		}
		trackID, ok := optionalID(c.Query("track_id"))
		if !ok {
			errors["track_id"] = "track_id must be a positive integer!"
		}
		if userID != nil && trackID != nil {
			errors["filter"] = "Filter by user_id or track_id, not both!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if userID != nil {
			c.Locals("userID", *userID)
		}
		if trackID != nil {
			c.Locals("trackID", *trackID)
		}
		return c.Next()
	}
}

func optionalID(raw string) (*uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, false
	}
	v := uint(id)
	return &v, true
}
