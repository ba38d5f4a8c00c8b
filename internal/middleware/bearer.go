package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/12narendra45/RecipeEase1/internal/auth"
)

// AccountIDKey is the request-local key holding the verified account id.
const AccountIDKey = "account_id"

// BearerAuth returns a middleware that gates identity-scoped routes. It
// extracts the bearer token from the Authorization header, verifies it via
// the token issuer and stores the embedded account id in request locals.
func BearerAuth(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "No token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])
		accountID, err := issuer.Verify(tokenStr)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(AccountIDKey, accountID)
		return c.Next()
	}
}
