package trackValidator

import (
	"upskill/dto"
	"upskill/validators/common"

	"github.com/gofiber/fiber/v2"
)

func TrackID() fiber.Handler {
	return common.ID("id", "trackID", "Track")
}

// SaveTrack validates the body of both create and update requests
func SaveTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.TrackRequest)
		if ok, err := common.ParseBody(c, reqData, false); !ok {
			return err
		}

		c.Locals("validatedTrack", reqData)
		return c.Next()
	}
}
