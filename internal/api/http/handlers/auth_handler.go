package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/api/dto"
	"github.com/spec-kit/litreview/internal/auth"
	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/service"
)

// AuthHandler exposes signup, login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	session, err := h.auth.Register(c.UserContext(), domain.Credentials(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": sessionResponse(session)})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	session, err := h.auth.Login(c.UserContext(), domain.Credentials(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(session)})
}

// Logout handles POST /auth/logout by revoking the presented token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.UserContext(), principal.Claims); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func sessionResponse(session *service.Session) dto.SessionResponse {
	return dto.SessionResponse{
		User: userResponse(session.User.Summary()),
		Auth: dto.AuthResponse{Token: session.Token, ExpiresAt: session.ExpiresAt},
	}
}
