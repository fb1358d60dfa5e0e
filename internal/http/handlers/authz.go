package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"bloodlink/internal/auth"
	"bloodlink/internal/domain"
	applog "bloodlink/internal/log"
)

// TokenDecoder verifies a raw cookie token and yields its claims.
type TokenDecoder interface {
	Decode(tok string) (jwt.MapClaims, error)
}

// RoleSource resolves the role stored for an email. A missing record surfaces
// as an error; gates treat any failure as a denial.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
}

// RequireAuth reads the token cookie, verifies it and attaches the claims to
// the request. Missing, malformed and expired tokens all answer 401 without
// telling the caller which it was.
func RequireAuth(dec TokenDecoder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Cookies("token")
		if tok == "" {
			applog.Security(c, "auth.token.missing", nil)
			return unauthorized(c)
		}
		claims, err := dec.Decode(tok)
		if err != nil {
			applog.Security(c, "auth.token.reject", nil)
			return unauthorized(c)
		}
		c.Locals("claims", claims)
		c.Locals("email", auth.Email(claims))
		return c.Next()
	}
}

// RequireAdmin allows only users whose stored role is admin. It runs after
// RequireAuth and re-reads the role on every request, so role changes apply
// immediately. Insufficient role answers 401, same as missing auth.
func RequireAdmin(roles RoleSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := roles.RoleByEmail(c.UserContext(), claimedEmail(c))
		if err != nil || role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"role": role})
			return unauthorized(c)
		}
		return c.Next()
	}
}

// RequireAdminOrVolunteer allows admins and volunteers.
func RequireAdminOrVolunteer(roles RoleSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := roles.RoleByEmail(c.UserContext(), claimedEmail(c))
		if err != nil || (role != domain.RoleAdmin && role != domain.RoleVolunteer) {
			applog.Security(c, "access.denied.volunteer", map[string]any{"role": role})
			return unauthorized(c)
		}
		return c.Next()
	}
}

func claimedEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
