package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type ExperienceHandler struct {
	Store store.ExperienceStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewExperienceHandler(st store.ExperienceStore, v *utils.Validator, log zerolog.Logger) *ExperienceHandler {
	return &ExperienceHandler{Store: st, Valid: v, Log: log}
}

func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	entries, err := h.Store.ListExperience(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"experience": entries})
}

// ExperienceReq carries dates as strings so the dashboard can post either a
// bare date or a full timestamp. Booleans and order use pointers: explicit
// false/0 is honored, only absence coalesces.
type ExperienceReq struct {
	Company  string `json:"company" validate:"required"`
	Position string `json:"position" validate:"required"`
	Location string `json:"location"`

	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate"`
	Current   *bool  `json:"current"`

	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	CompanyLogo  string   `json:"companyLogo"`
	Order        *int     `json:"order"`
}

func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var req ExperienceReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		return respondError(c, h.Log, apperror.Validation("startDate must be a valid date"))
	}

	current := req.Current != nil && *req.Current
	if req.EndDate == "" && !current {
		return respondError(c, h.Log, apperror.Validation("endDate is required unless current is true"))
	}

	e := models.Experience{
		Company:      req.Company,
		Position:     req.Position,
		Location:     req.Location,
		StartDate:    start,
		Current:      current,
		Description:  req.Description,
		Technologies: datatypes.JSONSlice[string](req.Technologies),
		Achievements: datatypes.JSONSlice[string](req.Achievements),
		CompanyLogo:  req.CompanyLogo,
	}
	if req.EndDate != "" {
		end, ok := parseDate(req.EndDate)
		if !ok {
			return respondError(c, h.Log, apperror.Validation("endDate must be a valid date"))
		}
		e.EndDate = &end
	}
	if req.Order != nil {
		e.Order = *req.Order
	}

	if err := h.Store.CreateExperience(c.Context(), &e); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Experience created successfully", "experience": e})
}

func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Experience")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	var req ExperienceReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	e, err := h.Store.ExperienceByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if e == nil {
		return respondError(c, h.Log, apperror.NotFound("Experience"))
	}

	e.Company = req.Company
	e.Position = req.Position
	e.Description = req.Description
	if req.Location != "" {
		e.Location = req.Location
	}
	if start, ok := parseDate(req.StartDate); ok {
		e.StartDate = start
	}
	if req.EndDate != "" {
		end, ok := parseDate(req.EndDate)
		if !ok {
			return respondError(c, h.Log, apperror.Validation("endDate must be a valid date"))
		}
		e.EndDate = &end
	}
	if req.Current != nil {
		e.Current = *req.Current
	}
	if req.Technologies != nil {
		e.Technologies = datatypes.JSONSlice[string](req.Technologies)
	}
	if req.Achievements != nil {
		e.Achievements = datatypes.JSONSlice[string](req.Achievements)
	}
	if req.CompanyLogo != "" {
		e.CompanyLogo = req.CompanyLogo
	}
	if req.Order != nil {
		e.Order = *req.Order
	}

	if err := h.Store.UpdateExperience(c.Context(), e); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Experience updated successfully", "experience": e})
}

func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Experience")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	e, err := h.Store.ExperienceByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if e == nil {
		return respondError(c, h.Log, apperror.NotFound("Experience"))
	}

	if err := h.Store.DeleteExperience(c.Context(), id); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Experience deleted successfully"})
}
