package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/akshit1742/portfolio-api/internal/apperror"
	"github.com/akshit1742/portfolio-api/internal/models"
	"github.com/akshit1742/portfolio-api/internal/store"
	"github.com/akshit1742/portfolio-api/internal/utils"
)

type ProjectHandler struct {
	Store store.ProjectStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewProjectHandler(st store.ProjectStore, v *utils.Validator, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{Store: st, Valid: v, Log: log}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.Store.ListProjects(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"projects": projects})
}

type ProjectReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`

	ShortDescription string   `json:"shortDescription"`
	Technologies     []string `json:"technologies"`
	GithubURL        string   `json:"githubUrl"`
	LiveURL          string   `json:"liveUrl"`
	Image            string   `json:"image"`

	Featured *bool  `json:"featured"` // pointer: explicit false must not coalesce
	Status   string `json:"status" validate:"omitempty,oneof=Completed 'In Progress' Planned"`
	Order    *int   `json:"order"`
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req ProjectReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	taken, err := h.Store.ProjectTitleTaken(c.Context(), req.Title, uuid.Nil)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if taken {
		return respondError(c, h.Log, apperror.Duplicate("Project with this title already exists"))
	}

	status := models.StatusCompleted
	if req.Status != "" {
		status = models.ProjectStatus(req.Status)
	}
	p := models.Project{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Technologies:     datatypes.JSONSlice[string](req.Technologies),
		GithubURL:        req.GithubURL,
		LiveURL:          req.LiveURL,
		Image:            req.Image,
		Status:           status,
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Order != nil {
		p.Order = *req.Order
	}

	if err := h.Store.CreateProject(c.Context(), &p); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Project created successfully", "project": p})
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Project")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	var req ProjectReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	p, err := h.Store.ProjectByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if p == nil {
		return respondError(c, h.Log, apperror.NotFound("Project"))
	}

	taken, err := h.Store.ProjectTitleTaken(c.Context(), req.Title, id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if taken {
		return respondError(c, h.Log, apperror.Duplicate("Project with this title already exists"))
	}

	p.Title = req.Title
	p.Description = req.Description
	if req.ShortDescription != "" {
		p.ShortDescription = req.ShortDescription
	}
	if req.Technologies != nil {
		p.Technologies = datatypes.JSONSlice[string](req.Technologies)
	}
	if req.GithubURL != "" {
		p.GithubURL = req.GithubURL
	}
	if req.LiveURL != "" {
		p.LiveURL = req.LiveURL
	}
	if req.Image != "" {
		p.Image = req.Image
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Status != "" {
		p.Status = models.ProjectStatus(req.Status)
	}
	if req.Order != nil {
		p.Order = *req.Order
	}

	if err := h.Store.UpdateProject(c.Context(), p); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Project updated successfully", "project": p})
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Project")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	p, err := h.Store.ProjectByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if p == nil {
		return respondError(c, h.Log, apperror.NotFound("Project"))
	}

	if err := h.Store.DeleteProject(c.Context(), id); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
