package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/mailer"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

// ContactHandler relays contact-form submissions over email. It is public:
// visitors submit it without a token.
type ContactHandler struct {
	Mailer mailer.Mailer
	Valid  *utils.Validator
	Log    zerolog.Logger
}

func NewContactHandler(m mailer.Mailer, v *utils.Validator, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{Mailer: m, Valid: v, Log: log}
}

type ContactReq struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var req ContactReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	err := h.Mailer.SendContactMessage(mailer.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("contact email delivery failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send email"})
	}

	return c.JSON(fiber.Map{"message": "Email sent successfully"})
}
