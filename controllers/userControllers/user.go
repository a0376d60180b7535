package userController

import (
	"fmt"

	"upskill/dto"
	"upskill/middleware"
	"upskill/services"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := ctrl.Users.GetAll(c.UserContext())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", dto.NewUserResponses(users))
}

func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	user, err := ctrl.Users.GetByID(c.UserContext(), c.Locals("userID").(uint))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", dto.NewUserResponse(user))
}

func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*dto.UserRequest)

	user, err := ctrl.Users.Create(c.UserContext(), reqData.Input())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	c.Location(fmt.Sprintf("/api/v1/users/%d", user.ID))
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", dto.NewUserResponse(user))
}

func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*dto.UserRequest)

	user, err := ctrl.Users.Update(c.UserContext(), c.Locals("userID").(uint), reqData.Input())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", dto.NewUserResponse(user))
}

func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	if err := ctrl.Users.Delete(c.UserContext(), c.Locals("userID").(uint)); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
