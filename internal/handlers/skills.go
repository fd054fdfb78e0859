package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type SkillHandler struct {
	Store store.SkillStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewSkillHandler(st store.SkillStore, v *utils.Validator, log zerolog.Logger) *SkillHandler {
	return &SkillHandler{Store: st, Valid: v, Log: log}
}

func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.Store.ListSkills(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"skills": skills})
}

type SkillReq struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,oneof=Frontend Backend Database Tools Other"`
	Level    string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Icon     string `json:"icon"`
	Order    *int   `json:"order"` // pointer: an explicit 0 must win over "omitted"
}

func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var req SkillReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	taken, err := h.Store.SkillNameTaken(c.Context(), req.Name, uuid.Nil)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if taken {
		return respondError(c, h.Log, apperror.Duplicate("Skill already exists"))
	}

	level := models.LevelIntermediate
	if req.Level != "" {
		level = models.SkillLevel(req.Level)
	}
	sk := models.Skill{
		Name:     req.Name,
		Category: models.SkillCategory(req.Category),
		Level:    level,
		Icon:     req.Icon,
	}
	if req.Order != nil {
		sk.Order = *req.Order
	}

	if err := h.Store.CreateSkill(c.Context(), &sk); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Skill created successfully", "skill": sk})
}

func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Skill")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	var req SkillReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	sk, err := h.Store.SkillByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if sk == nil {
		return respondError(c, h.Log, apperror.NotFound("Skill"))
	}

	taken, err := h.Store.SkillNameTaken(c.Context(), req.Name, id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if taken {
		return respondError(c, h.Log, apperror.Duplicate("Skill with this name already exists"))
	}

	sk.Name = req.Name
	sk.Category = models.SkillCategory(req.Category)
	if req.Level != "" {
		sk.Level = models.SkillLevel(req.Level)
	}
	if req.Icon != "" {
		sk.Icon = req.Icon
	}
	if req.Order != nil {
		sk.Order = *req.Order
	}

	if err := h.Store.UpdateSkill(c.Context(), sk); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Skill updated successfully", "skill": sk})
}

func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Skill")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	sk, err := h.Store.SkillByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if sk == nil {
		return respondError(c, h.Log, apperror.NotFound("Skill"))
	}

	if err := h.Store.DeleteSkill(c.Context(), id); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Skill deleted successfully"})
}
