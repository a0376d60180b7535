package userRoutes

import (
	userController "upskill/controllers/userControllers"
	userValidator "upskill/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, ctrl *userController.UserController) {
	userGroup := app.Group("/api/v1/users")

	userGroup.Get("/", ctrl.GetUsers)
	userGroup.Get("/:id", userValidator.UserID(), ctrl.GetUser)
	userGroup.Post("/", userValidator.SaveUser(), ctrl.CreateUser)
	userGroup.Put("/:id", userValidator.UserID(), userValidator.SaveUser(), ctrl.UpdateUser)
	userGroup.Delete("/:id", userValidator.UserID(), ctrl.DeleteUser)
}
