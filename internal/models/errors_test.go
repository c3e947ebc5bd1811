package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("No post found with that ID."), fiber.StatusNotFound},
		{"validation", NewValidationError("From date is invalid."), fiber.StatusBadRequest},
		{"conflict maps to 400", NewConflictError("Email already exists."), fiber.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("User not authorized."), fiber.StatusUnauthorized},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("lookup: %w", NewNotFoundError("gone")), fiber.StatusNotFound},
		{"fiber error keeps its status", fiber.ErrNotFound, fiber.StatusNotFound},
		{"fiber method not allowed", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}
