package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"bloodlink/internal/auth"
	"bloodlink/internal/http/handlers"
)

// stubRoles resolves roles from a fixed map and counts lookups.
type stubRoles struct {
	roles   map[string]string
	lookups int
}

func (s *stubRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	s.lookups++
	role, ok := s.roles[email]
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return role, nil
}

func newGateApp(codec *auth.Codec, roles *stubRoles, handlerHit *bool) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		*handlerHit = true
		return c.SendStatus(http.StatusOK)
	}
	app.Get("/admin-only", handlers.RequireAuth(codec), handlers.RequireAdmin(roles), ok)
	app.Get("/panel", handlers.RequireAuth(codec), handlers.RequireAdminOrVolunteer(roles), ok)
	return app
}

func mintToken(t *testing.T, codec *auth.Codec, email string) *http.Cookie {
	t.Helper()
	tok, err := codec.Encode(jwt.MapClaims{"email": email})
	if err != nil {
		t.Fatalf("encode token: %v", err)
	}
	return &http.Cookie{Name: "token", Value: tok}
}

func TestGates_NoCookieShortCircuits(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if hit {
		t.Fatal("handler ran despite missing token")
	}
	if roles.lookups != 0 {
		t.Fatalf("role lookup ran %d times despite missing token", roles.lookups)
	}
}

func TestGates_BadTokenRejected(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{"admin@bloodlink.test": "admin"}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	// Signed with a different secret.
	forged := mintToken(t, auth.NewCodec("other-secret", time.Hour), "admin@bloodlink.test")
	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(forged)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d", resp.StatusCode)
	}
	if hit || roles.lookups != 0 {
		t.Fatal("forged token reached past the auth gate")
	}
}

func TestGates_ExpiredTokenRejected(t *testing.T) {
	roles := &stubRoles{roles: map[string]string{"admin@bloodlink.test": "admin"}}
	hit := false
	app := newGateApp(auth.NewCodec("test-secret", time.Hour), roles, &hit)

	expired := mintToken(t, auth.NewCodec("test-secret", -1*time.Minute), "admin@bloodlink.test")
	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(expired)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.StatusCode)
	}
	if hit {
		t.Fatal("handler ran on expired token")
	}
}

func TestGates_DonorBlockedFromAdminRoute(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{"donor@bloodlink.test": "donor"}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(mintToken(t, codec, "donor@bloodlink.test"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for donor on admin route, got %d", resp.StatusCode)
	}
	if hit {
		t.Fatal("handler ran for insufficient role")
	}
	if roles.lookups != 1 {
		t.Fatalf("expected exactly one role lookup, got %d", roles.lookups)
	}
}

func TestGates_VolunteerAllowedOnPanel(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{"vol@bloodlink.test": "volunteer"}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	req := httptest.NewRequest("GET", "/panel", nil)
	req.AddCookie(mintToken(t, codec, "vol@bloodlink.test"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for volunteer on panel, got %d", resp.StatusCode)
	}
	if !hit {
		t.Fatal("handler did not run for allowed role")
	}
}

func TestGates_VolunteerBlockedFromAdminOnly(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{"vol@bloodlink.test": "volunteer"}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(mintToken(t, codec, "vol@bloodlink.test"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for volunteer on admin-only route, got %d", resp.StatusCode)
	}
	if hit {
		t.Fatal("handler ran for volunteer on admin-only route")
	}
}

func TestGates_AdminAllowedEverywhere(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{"admin@bloodlink.test": "admin"}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	for _, path := range []string{"/admin-only", "/panel"} {
		hit = false
		req := httptest.NewRequest("GET", path, nil)
		req.AddCookie(mintToken(t, codec, "admin@bloodlink.test"))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("admin expected 200 on %s, got %d", path, resp.StatusCode)
		}
		if !hit {
			t.Fatalf("handler did not run on %s", path)
		}
	}
}

func TestGates_UnknownEmailDenied(t *testing.T) {
	codec := auth.NewCodec("test-secret", time.Hour)
	roles := &stubRoles{roles: map[string]string{}}
	hit := false
	app := newGateApp(codec, roles, &hit)

	req := httptest.NewRequest("GET", "/panel", nil)
	req.AddCookie(mintToken(t, codec, "ghost@bloodlink.test"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", resp.StatusCode)
	}
	if hit {
		t.Fatal("handler ran for unknown email")
	}
}
