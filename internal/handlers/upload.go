package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
)

const maxUploadSize = 10 << 20 // 10 MiB

var allowedMIME = map[string]map[string]bool{
	"image": {
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	},
	"resume": {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	},
}

var allowedExt = map[string]map[string]bool{
	"image":  {".jpg": true, ".jpeg": true, ".png": true, ".webp": true},
	"resume": {".pdf": true, ".doc": true, ".docx": true},
}

// subdir under the upload root per discriminator
var typeDir = map[string]string{"image": "images", "resume": "resumes"}

type UploadHandler struct {
	Dir     string // upload root, served at /uploads
	BaseURL string // optional absolute prefix for returned URLs
	Log     zerolog.Logger
}

func NewUploadHandler(dir, baseURL string, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{Dir: dir, BaseURL: baseURL, Log: log}
}

// Upload validates in a fixed order — file presence, type discriminator,
// size, MIME — and the first failure short-circuits before anything touches
// disk. Auth has already run as route middleware.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, h.Log, apperror.Validation("No file uploaded"))
	}

	typ := c.FormValue("type")
	if typeDir[typ] == "" {
		return respondError(c, h.Log, apperror.Validation(`Invalid file type. Must be "image" or "resume"`))
	}

	if file.Size > maxUploadSize {
		return respondError(c, h.Log, apperror.Validation("File size too large. Maximum 10MB allowed."))
	}

	mime := file.Header.Get(fiber.HeaderContentType)
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedMIME[typ][mime] || !allowedExt[typ][ext] {
		if typ == "image" {
			return respondError(c, h.Log, apperror.Validation("Invalid image format. Only JPEG, PNG, and WebP are allowed."))
		}
		return respondError(c, h.Log, apperror.Validation("Invalid resume format. Only PDF, DOC, and DOCX are allowed."))
	}

	uploadDir := filepath.Join(h.Dir, typeDir[typ])
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	// timestamped name: unique enough without a uniqueness query
	fileName := fmt.Sprintf("%s_%d%s", typ, time.Now().UnixMilli(), ext)
	if err := c.SaveFile(file, filepath.Join(uploadDir, fileName)); err != nil {
		return respondError(c, h.Log, apperror.Storage(err))
	}

	publicURL := "/uploads/" + typeDir[typ] + "/" + fileName
	if h.BaseURL != "" {
		publicURL = strings.TrimRight(h.BaseURL, "/") + publicURL
	}

	return c.JSON(fiber.Map{
		"message":  "File uploaded successfully",
		"url":      publicURL,
		"fileName": fileName,
		"fileSize": file.Size,
		"fileType": mime,
	})
}
