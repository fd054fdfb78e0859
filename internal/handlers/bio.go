package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type BioHandler struct {
	Store store.BioStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewBioHandler(st store.BioStore, v *utils.Validator, log zerolog.Logger) *BioHandler {
	return &BioHandler{Store: st, Valid: v, Log: log}
}

// Get is public. The singleton read takes the newest row, so the response is
// stable even if a duplicate ever sneaks in.
func (h *BioHandler) Get(c *fiber.Ctx) error {
	bio, err := h.Store.LatestBio(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"bio": bio})
}

type BioReq struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle" validate:"required"`
	Description string `json:"description" validate:"required"`

	ProfileImage string `json:"profileImage"`
	ResumeLink   string `json:"resumeLink"`
}

// Upsert creates the bio on first write and updates it afterwards. Optional
// URL fields coalesce: an empty value keeps whatever is stored.
func (h *BioHandler) Upsert(c *fiber.Ctx) error {
	var req BioReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	bio, err := h.Store.LatestBio(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	if bio != nil {
		bio.Title = req.Title
		bio.Subtitle = req.Subtitle
		bio.Description = req.Description
		if req.ProfileImage != "" {
			bio.ProfileImage = req.ProfileImage
		}
		if req.ResumeLink != "" {
			bio.ResumeLink = req.ResumeLink
		}
		if err := h.Store.UpdateBio(c.Context(), bio); err != nil {
			return respondError(c, h.Log, apperror.Storage(err))
		}
		return c.JSON(fiber.Map{"message": "Bio updated successfully", "bio": bio})
	}

	bio = &models.Bio{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		ProfileImage: req.ProfileImage,
		ResumeLink:   req.ResumeLink,
	}
	if err := h.Store.CreateBio(c.Context(), bio); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Bio created successfully", "bio": bio})
}
