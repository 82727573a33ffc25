package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
)

type UserService interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *repositories.UserFilter, limit, offset int) ([]*models.User, int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, phone *string) (*models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, user *models.User, password string) error {
	if user.Email == "" {
		return errors.New("email is required")
	}
	if !models.ValidRole(user.Role) {
		return errors.New("invalid role")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	// Email is unique and immutable after creation
	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return errors.New("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.ID = uuid.New()
	user.PasswordHash = string(hash)
	user.IsActive = true

	return s.userRepo.Create(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, user *models.User) error {
	if !models.ValidRole(user.Role) {
		return errors.New("invalid role")
	}
	return s.userRepo.Update(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) List(ctx context.Context, filter *repositories.UserFilter, limit, offset int) ([]*models.User, int, error) {
	users, err := s.userRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SetActive is idempotent: activating an already-active user succeeds
// without touching anything meaningful.
func (s *userService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return errors.New("user not found")
	}
	return s.userRepo.SetActive(ctx, id, active)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, phone *string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Phone = phone

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, string(hash))
}
