package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type EducationHandler struct {
	Store store.EducationStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewEducationHandler(st store.EducationStore, v *utils.Validator, log zerolog.Logger) *EducationHandler {
	return &EducationHandler{Store: st, Valid: v, Log: log}
}

func (h *EducationHandler) List(c *fiber.Ctx) error {
	entries, err := h.Store.ListEducation(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"education": entries})
}

type EducationReq struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`

	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate"`
	Current   *bool  `json:"current"`

	Grade       string `json:"grade"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Order       *int   `json:"order"`
}

func (h *EducationHandler) Create(c *fiber.Ctx) error {
	var req EducationReq
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

	e := models.Education{
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   start,
		Current:     req.Current != nil && *req.Current,
		Grade:       req.Grade,
		Description: req.Description,
		Logo:        req.Logo,
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

	if err := h.Store.CreateEducation(c.Context(), &e); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Education created successfully", "education": e})
}

func (h *EducationHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Education")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	var req EducationReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	e, err := h.Store.EducationByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if e == nil {
		return respondError(c, h.Log, apperror.NotFound("Education"))
	}

	e.Institution = req.Institution
	e.Degree = req.Degree
	if req.Field != "" {
		e.Field = req.Field
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
	if req.Grade != "" {
		e.Grade = req.Grade
	}
	if req.Description != "" {
		e.Description = req.Description
	}
	if req.Logo != "" {
		e.Logo = req.Logo
	}
	if req.Order != nil {
		e.Order = *req.Order
	}

	if err := h.Store.UpdateEducation(c.Context(), e); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Education updated successfully", "education": e})
}

func (h *EducationHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Education")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	e, err := h.Store.EducationByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if e == nil {
		return respondError(c, h.Log, apperror.NotFound("Education"))
	}

	if err := h.Store.DeleteEducation(c.Context(), id); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Education deleted successfully"})
}
