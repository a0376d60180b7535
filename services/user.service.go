package services

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"upskill/models"
	"upskill/repositories"

	"gorm.io/gorm"
)

// UserInput carries the writable fields of a user
type UserInput struct {
	Name        string
	Email       string
	AreaOfWork  *string
	CareerLevel *string
}

type UserService struct {
	users repositories.UserRepository
	now   func() time.Time
}

func NewUserService(users repositories.UserRepository, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{users: users, now: now}
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user.GetByID", "User with ID %d not found", id)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	const op = "user.Create"

	in = normalizeUserInput(in)
	if err := s.ensureEmailFree(ctx, op, in.Email, 0); err != nil {
		return nil, err
	}

	user := models.User{RegisteredAt: s.now().UTC()}
	applyUserInput(&user, in)

	if err := s.users.Create(ctx, &user); err != nil {
		return nil, translateDuplicate(op, err, in.Email)
	}
	log.Printf("[USER] user %d registered", user.ID)
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UserInput) (*models.User, error) {
	const op = "user.Update"

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound(op, "User with ID %d not found", id)
	}

	in = normalizeUserInput(in)
	if err := s.ensureEmailFree(ctx, op, in.Email, id); err != nil {
		return nil, err
	}

	applyUserInput(user, in)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, translateDuplicate(op, err, in.Email)
	}
	return user, nil
}

// Delete removes the user and, through the foreign key, every enrollment it owns.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return notFound("user.Delete", "User with ID %d not found", id)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[USER] user %d deleted", id)
	return nil
}

// ensureEmailFree fails with a conflict when another user (not selfID) owns the email
func (s *UserService) ensureEmailFree(ctx context.Context, op, email string, selfID uint) error {
	owner, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if owner != nil && owner.ID != selfID {
		return conflict(op, "Email %s is already registered", email)
	}
	return nil
}

func translateDuplicate(op string, err error, email string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict(op, "Email %s is already registered", email)
	}
	return err
}

func normalizeUserInput(in UserInput) UserInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	return in
}

func applyUserInput(user *models.User, in UserInput) {
	user.Name = in.Name
	user.Email = in.Email
	user.AreaOfWork = optionalString(in.AreaOfWork)
	user.CareerLevel = optionalString(in.CareerLevel)
}

// optionalString maps nil or blank input to NULL
func optionalString(s *string) sql.NullString {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.TrimSpace(*s), Valid: true}
}
