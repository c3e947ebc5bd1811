package server

import (
	"errors"
	"fmt"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/service"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "devconnect-api"
	tokenAudience = "devconnect-client"
	tokenLifetime = 3600 * time.Second
)

// UsersTest handles the public smoke-test route.
func (s *Server) UsersTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Users Works"})
}

// Register handles new user registration
func (s *Server) Register(c *fiber.Ctx) error {
	var input validation.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidateRegisterInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			return models.RespondWithFieldErrors(c,
				map[string]string{"email": appErr.Message})
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login authenticates a user and issues a bearer token.
// An unknown email renders 404, a wrong password 400, matching the
// contract the frontend expects.
func (s *Server) Login(c *fiber.Ctx) error {
	var input validation.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fieldErrors, ok := validation.ValidateLoginInput(input); !ok {
		return models.RespondWithFieldErrors(c, fieldErrors)
	}

	user, err := s.userService.Authenticate(c.UserContext(), service.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			switch appErr.Code {
			case models.CodeNotFound:
				return c.Status(fiber.StatusNotFound).JSON(
					fiber.Map{"email": appErr.Message})
			case models.CodeUnauthorized:
				return c.Status(fiber.StatusBadRequest).JSON(
					fiber.Map{"password": appErr.Message})
			}
		}
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(user.ID, user.Name, user.Avatar)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   "Bearer " + token,
	})
}

// CurrentUser returns the authenticated caller's identity.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.CurrentUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// generateToken creates a signed JWT carrying the caller's display identity.
func (s *Server) generateToken(userID uint, name, avatar string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    fmt.Sprintf("%d", userID),
		"name":   name,
		"avatar": avatar,
		"iss":    tokenIssuer,
		"aud":    tokenAudience,
		"jti":    uuid.New().String(),
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"exp":    now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
