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

type CertificationHandler struct {
	Store store.CertificationStore
	Valid *utils.Validator
	Log   zerolog.Logger
}

func NewCertificationHandler(st store.CertificationStore, v *utils.Validator, log zerolog.Logger) *CertificationHandler {
	return &CertificationHandler{Store: st, Valid: v, Log: log}
}

func (h *CertificationHandler) List(c *fiber.Ctx) error {
	certs, err := h.Store.ListCertifications(c.Context())
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"certifications": certs})
}

type CertificationReq struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`

	IssueDate  string `json:"issueDate" validate:"required"`
	ExpiryDate string `json:"expiryDate"`

	CredentialID  string   `json:"credentialId"`
	CredentialURL string   `json:"credentialUrl"`
	Image         string   `json:"image"`
	Skills        []string `json:"skills"`
	Order         *int     `json:"order"`
}

func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	var req CertificationReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	issued, ok := parseDate(req.IssueDate)
	if !ok {
		return respondError(c, h.Log, apperror.Validation("issueDate must be a valid date"))
	}

	cert := models.Certification{
		Name:          req.Name,
		Issuer:        req.Issuer,
		IssueDate:     issued,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		Image:         req.Image,
		Skills:        datatypes.JSONSlice[string](req.Skills),
	}
	if req.ExpiryDate != "" {
		expiry, ok := parseDate(req.ExpiryDate)
		if !ok {
			return respondError(c, h.Log, apperror.Validation("expiryDate must be a valid date"))
		}
		cert.ExpiryDate = &expiry
	}
	if req.Order != nil {
		cert.Order = *req.Order
	}

	if err := h.Store.CreateCertification(c.Context(), &cert); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Certification created successfully", "certification": cert})
}

func (h *CertificationHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Certification")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	var req CertificationReq
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, h.Log, apperror.Validation("invalid request body"))
	}
	if msg := h.Valid.Struct(req); msg != "" {
		return respondError(c, h.Log, apperror.Validation(msg))
	}

	cert, err := h.Store.CertificationByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if cert == nil {
		return respondError(c, h.Log, apperror.NotFound("Certification"))
	}

	cert.Name = req.Name
	cert.Issuer = req.Issuer
	if issued, ok := parseDate(req.IssueDate); ok {
		cert.IssueDate = issued
	}
	if req.ExpiryDate != "" {
		expiry, ok := parseDate(req.ExpiryDate)
		if !ok {
			return respondError(c, h.Log, apperror.Validation("expiryDate must be a valid date"))
		}
		cert.ExpiryDate = &expiry
	}
	if req.CredentialID != "" {
		cert.CredentialID = req.CredentialID
	}
	if req.CredentialURL != "" {
		cert.CredentialURL = req.CredentialURL
	}
	if req.Image != "" {
		cert.Image = req.Image
	}
	if req.Skills != nil {
		cert.Skills = datatypes.JSONSlice[string](req.Skills)
	}
	if req.Order != nil {
		cert.Order = *req.Order
	}

	if err := h.Store.UpdateCertification(c.Context(), cert); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Certification updated successfully", "certification": cert})
}

func (h *CertificationHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Certification")
	if err != nil {
		return respondError(c, h.Log, err)
	}

	cert, err := h.Store.CertificationByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	if cert == nil {
		return respondError(c, h.Log, apperror.NotFound("Certification"))
	}

	if err := h.Store.DeleteCertification(c.Context(), id); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}
	return c.JSON(fiber.Map{"message": "Certification deleted successfully"})
}
