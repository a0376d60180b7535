package dto

import (
	"time"

	"upskill/models"
	"upskill/services"
)

type UserRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Email       string  `json:"email" validate:"required,email,max=150"`
	AreaOfWork  *string `json:"area_of_work" validate:"omitnil,max=100"`
	CareerLevel *string `json:"career_level" validate:"omitnil,max=50"`
}

func (r *UserRequest) Input() services.UserInput {
	return services.UserInput{
		Name:        r.Name,
		Email:       r.Email,
		AreaOfWork:  r.AreaOfWork,
		CareerLevel: r.CareerLevel,
	}
}

type UserResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AreaOfWork   *string   `json:"area_of_work"`
	CareerLevel  *string   `json:"career_level"`
	RegisteredAt time.Time `json:"registered_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		AreaOfWork:   nullString(u.AreaOfWork),
		CareerLevel:  nullString(u.CareerLevel),
		RegisteredAt: u.RegisteredAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
