package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type ContactInfoHandler struct {
	Store store.ContactInfoStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewContactInfoHandler(st store.ContactInfoStore, v *utils.Validator, log zerolog.Logger) *ContactInfoHandler {
	return &ContactInfoHandler{Store: st, Valid: v, Log: log}
}

func (h *ContactInfoHandler) Get(c *fiber.Ctx) error {
	info, err := h.Store.LatestContactInfo(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"contactInfo": info})
}

type ContactInfoReq struct {
	Email string `json:"email" validate:"required,email"`

	Phone    string `json:"phone"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`

	Availability string `json:"availability" validate:"omitempty,oneof=Available Busy 'Not Available'"`
}

func (h *ContactInfoHandler) Upsert(c *fiber.Ctx) error {
	var req ContactInfoReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	info, err := h.Store.LatestContactInfo(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	if info != nil {
		info.Email = req.Email
		if req.Phone != "" {
			info.Phone = req.Phone
		}
		if req.Location != "" {
			info.Location = req.Location
		}
		if req.Linkedin != "" {
			info.Linkedin = req.Linkedin
		}
		if req.Github != "" {
			info.Github = req.Github
		}
		if req.Twitter != "" {
			info.Twitter = req.Twitter
		}
		if req.Website != "" {
			info.Website = req.Website
		}
		if req.Availability != "" {
			info.Availability = models.Availability(req.Availability)
		}
		if err := h.Store.UpdateContactInfo(c.Context(), info); err != nil {
			return respondError(c, h.Log, apperror.Storage(err))
		}
		return c.JSON(fiber.Map{"message": "Contact info updated successfully", "contactInfo": info})
	}

	availability := models.AvailabilityAvailable
	if req.Availability != "" {
		availability = models.Availability(req.Availability)
	}
	info = &models.ContactInfo{
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Linkedin:     req.Linkedin,
		Github:       req.Github,
		Twitter:      req.Twitter,
		Website:      req.Website,
		Availability: availability,
	}
	if err := h.Store.CreateContactInfo(c.Context(), info); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Contact info created successfully", "contactInfo": info})
}
