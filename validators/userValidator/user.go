package userValidator

import (
	"upskill/dto"
	"upskill/validators/common"

	"github.com/gofiber/fiber/v2"
)

func UserID() fiber.Handler {
	return common.ID("id", "userID", "User")
}

// SaveUser validates the body of both create and update requests
func SaveUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.UserRequest)
		if ok, err := common.ParseBody(c, reqData, false); !ok {
			return err
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
