package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/12narendra45/RecipeEase1/internal/account"
)

// Handler exposes the register and login endpoints.
type Handler struct {
	accounts *account.Service
	issuer   *TokenIssuer
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(accounts *account.Service, issuer *TokenIssuer) *Handler {
	return &Handler{accounts: accounts, issuer: issuer}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Register handles account creation. No token is issued here; the client
// logs in separately.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	_, err := h.accounts.Register(c.UserContext(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingFields):
			return fiber.NewError(http.StatusBadRequest, "Missing fields")
		case errors.Is(err, account.ErrEmailOrUsernameTaken):
			return fiber.NewError(http.StatusConflict, "Email or username already in use")
		default:
			return fiber.NewError(http.StatusInternalServerError, "registration failed")
		}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Registered successfully"})
}

// Login verifies credentials and returns a session token together with a safe
// projection of the account.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	acct, err := h.accounts.Authenticate(c.UserContext(), req.EmailOrUsername, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}
	token, err := h.issuer.Issue(acct.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}
	return c.Status(http.StatusOK).JSON(loginResponse{
		Token: token,
		User:  userPayload{Name: acct.Name, Email: acct.Email, Username: acct.Username},
	})
}
