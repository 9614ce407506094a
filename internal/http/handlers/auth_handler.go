package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
	"github.com/oseasjs/nest-crud-jwt/internal/services"
	"github.com/oseasjs/nest-crud-jwt/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return respondErr(c, fmt.Errorf("malformed body: %w", domain.ErrValidation))
	}
	username, ok := validate.Username(body.Username)
	if !ok {
		applog.Security(c, "auth.signup.fail", map[string]any{"reason": "bad_username"})
		return respondErr(c, fmt.Errorf("username must be 4-20 characters: %w", domain.ErrValidation))
	}
	if !validate.Password(body.Password) {
		applog.Security(c, "auth.signup.fail", map[string]any{"username": username, "reason": "weak_password"})
		return respondErr(c, fmt.Errorf("password must be 8-20 characters mixing upper, lower, digit and symbol: %w", domain.ErrValidation))
	}

	if err := h.Auth.SignUp(username, body.Password); err != nil {
		return respondErr(c, err)
	}
	applog.Audit(c, "auth.signup.success", map[string]any{"username": username})
	return c.SendStatus(fiber.StatusCreated)
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return respondErr(c, fmt.Errorf("malformed body: %w", domain.ErrValidation))
	}

	token, err := h.Auth.SignIn(body.Username, body.Password)
	if err != nil {
		applog.Security(c, "auth.signin.fail", map[string]any{"username": body.Username})
		return respondErr(c, err)
	}
	applog.Audit(c, "auth.signin.success", map[string]any{"username": body.Username})
	return c.JSON(fiber.Map{"accessToken": token})
}
