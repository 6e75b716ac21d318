package handlers

import (
	"errors"

	"salonspa/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps a domain error to an HTTP status and writes the usual
// JSON error body.
func errorResponse(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrEmptyCart):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrPermissionDenied):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrInsufficientStock), errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrAlreadyExists):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// currentUser pulls the authenticated user's ID and staff flag out of the
// request context set by the JWT middleware.
func currentUser(c *fiber.Ctx) (userID string, isStaff bool) {
	userID, _ = c.Locals("user_id").(string)
	isStaff, _ = c.Locals("is_staff").(bool)
	return userID, isStaff
}
