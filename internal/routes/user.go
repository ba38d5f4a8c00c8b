package routes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/12narendra45/RecipeEase1/internal/account"
	"github.com/12narendra45/RecipeEase1/internal/middleware"
)

// RegisterUserRoutes exposes identity-scoped endpoints. The router is
// expected to carry the bearer-auth guard already.
func RegisterUserRoutes(r fiber.Router, accounts *account.Service) {
	r.Get("/me", func(c *fiber.Ctx) error {
		id, _ := c.Locals(middleware.AccountIDKey).(string)
		if id == "" {
			return c.SendStatus(http.StatusUnauthorized)
		}
		acct, err := accounts.GetByID(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, account.ErrNotFound) {
				return fiber.NewError(http.StatusNotFound, "Not found")
			}
			return fiber.NewError(http.StatusInternalServerError, "profile lookup failed")
		}
		return c.Status(http.StatusOK).JSON(acct.Profile())
	})
}
