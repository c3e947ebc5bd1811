package server

import (
	"strconv"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses a numeric route parameter such as :post_id. A
// malformed ID never matches a stored record, so it surfaces as a not-found
// error for the caller to render.
func parseIDParam(c *fiber.Ctx, name, notFoundMsg string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, models.NewNotFoundError(notFoundMsg)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated caller's ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// respondServiceError maps a service-layer error onto the wire.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
