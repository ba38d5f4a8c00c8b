package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/12narendra45/RecipeEase1/internal/auth"
	"github.com/12narendra45/RecipeEase1/internal/config"
)

func setupGuardedApp(t *testing.T) (*fiber.App, *auth.TokenIssuer) {
	t.Helper()
	issuer := auth.NewTokenIssuer(config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour})
	app := fiber.New()
	app.Get("/protected", BearerAuth(issuer), func(c *fiber.Ctx) error {
		id, _ := c.Locals(AccountIDKey).(string)
		return c.SendString(id)
	})
	return app, issuer
}

func TestBearerAuthMissingHeader(t *testing.T) {
	app, _ := setupGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestBearerAuthGarbageToken(t *testing.T) {
	app, _ := setupGuardedApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestBearerAuthValidToken(t *testing.T) {
	app, issuer := setupGuardedApp(t)

	token, err := issuer.Issue("acct-42")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if got := string(body); got != "acct-42" {
		t.Fatalf("expected account id acct-42 in locals, got %q", got)
	}
}
