package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
)

// respondErr maps the failure taxonomy to HTTP statuses. Storage and
// unexpected failures get a generic body; the cause stays server-side.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
}

// ErrorHandler is the app-level fallback for errors that escape the
// handlers (including fiber's own, e.g. body limit).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	return respondErr(c, err)
}
