package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/middleware"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type AuthHandler struct {
	Store     store.UserStore
	JWTSecret string
	Expires   int // minutes
	Valid     *utils.Validator
	Log       zerolog.Logger
}

type SetupReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

// Setup creates the sole admin identity. It is unauthenticated by design
// (no token can exist before the first admin) but self-limiting: once an
// admin row exists every further call fails without side effects.
func (h *AuthHandler) Setup(c *fiber.Ctx) error {
	exists, err := h.Store.AdminExists(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if exists {
		return respondError(c, h.Log, apperror.Validation("Admin user already exists. Use login to access the dashboard."))
	}

	var req SetupReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Admin User"
	}

	u := models.User{
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := h.Store.CreateUser(c.Context(), &u); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin user created successfully! You can now login.",
		"email":   u.Email,
	})
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	u, err := h.Store.UserByEmail(c.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		return respondError(c, h.Log, apperror.Auth("Invalid email or password"))
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID.String(), u.Email, string(u.Role), h.Expires)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	h.setAuthCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   -1,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the identity behind the presented token. Runs behind RequireAuth.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.userFromLocals(c)
	if err != nil {
		return respondError(c, h.Log, err)
	}
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}

func (h *AuthHandler) userFromLocals(c *fiber.Ctx) (*models.User, error) {
	uid, _ := c.Locals("userId").(string)
	email, _ := c.Locals("email").(string)
	if uid == "" || email == "" {
		return nil, apperror.Auth("Unauthorized")
	}
	u, err := h.Store.UserByEmail(c.Context(), email)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if u == nil || u.ID.String() != uid {
		return nil, apperror.Auth("Unauthorized")
	}
	return u, nil
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
}
