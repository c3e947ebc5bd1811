// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"
	"devconnect/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, authentication and account lifecycle.
type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// RegisterInput carries a validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register creates a user with a gravatar-derived avatar and a bcrypt-hashed
// password. Returns a conflict error when the email is already registered.
// The stored hash never leaves this layer in serialized form.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Avatar:   gravatar.URL(in.Email),
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. An unknown email yields a not-found
// error; a wrong password yields an unauthorized error.
func (s *UserService) Authenticate(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User not found.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Password incorrect.")
	}
	return user, nil
}

// CurrentUser loads the user for the given ID.
func (s *UserService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// DeleteAccount removes the user's profile (when present) and the user record
// in a single transaction.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.profileRepo.DeleteWithUser(ctx, userID)
}
