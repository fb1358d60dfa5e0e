package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"bloodlink/internal/auth"
	applog "bloodlink/internal/log"
)

type AuthHandler struct {
	Codec *auth.Codec
	// Production toggles Secure + SameSite=None so the cookie can travel
	// cross-site to the deployed frontend; local dev keeps Strict.
	Production bool
}

func (h *AuthHandler) tokenCookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteStrictMode
	if h.Production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.Production,
		SameSite: sameSite,
		Expires:  expires,
	}
}

// IssueToken signs the posted identity claims and sets the token cookie.
// POST /jwt
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	claims := jwt.MapClaims{}
	if err := c.BodyParser(&claims); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if auth.Email(claims) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email claim required")
	}

	tok, err := h.Codec.Encode(claims)
	if err != nil {
		return err
	}
	c.Cookie(h.tokenCookie(tok, time.Now().Add(h.Codec.TTL)))
	applog.Audit(c, "auth.token.issue", map[string]any{"email": auth.Email(claims)})
	return c.JSON(fiber.Map{"success": true})
}

// Logout clears the token cookie.
// GET /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.tokenCookie("", time.Now().Add(-1*time.Hour)))
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"success": true})
}
