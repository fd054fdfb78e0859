package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akshit1742/portfolio-api/internal/apperror"
)

// respondError maps the apperror taxonomy onto HTTP statuses. Anything
// outside the closed set is a storage/unexpected failure: logged in full,
// returned as an opaque 500.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrAuth):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// pathID parses the {id} segment. A malformed id can never match a document,
// so it reports the same not-found error as a well-formed unknown id.
func pathID(c *fiber.Ctx, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NotFound(resource)
	}
	return id, nil
}

// parseDate accepts the formats the dashboard sends: a bare date from an
// <input type="date"> or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
