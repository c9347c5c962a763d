package handlers

import (
	"katalog/internal/dto"
	"katalog/internal/middleware"
	"katalog/internal/services"
	"katalog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles account registration, token issuance and the caller's profile.
type AuthHandler struct {
	users    *services.UserService
	auth     *services.AuthService
	validate *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users *services.UserService, auth *services.AuthService) *AuthHandler {
	return &AuthHandler{
		users:    users,
		auth:     auth,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the account routes. Registration and token
// issuance are public; /users/me goes through requireAuth.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Post("/token", h.HandleToken)
	userRoutes.Get("/me", requireAuth, h.HandleGetMe)
	userRoutes.Patch("/me", requireAuth, h.HandleUpdateMe)
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"max=255"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Validate(req); err != nil {
		return err
	}

	user, err := h.users.CreateUser(req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromUser(user))
}

// TokenRequest is the body of POST /users/token.
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleToken exchanges credentials for a bearer token.
func (h *AuthHandler) HandleToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Validate(req); err != nil {
		return err
	}

	token, err := h.auth.IssueToken(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// HandleGetMe returns the authenticated user.
func (h *AuthHandler) HandleGetMe(c *fiber.Ctx) error {
	user, err := h.users.GetUser(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUser(user))
}

// UpdateMeRequest is the body of PATCH /users/me.
type UpdateMeRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitnil,min=5"`
}

// HandleUpdateMe updates the authenticated user's name or password.
func (h *AuthHandler) HandleUpdateMe(c *fiber.Ctx) error {
	var req UpdateMeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Validate(req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(middleware.CurrentUserID(c), req.Name, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUser(user))
}
