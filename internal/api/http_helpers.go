package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the typed core errors onto HTTP statuses: validation
// issues carry the offending field list, precondition failures become 422,
// anything else is an internal error.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	}

	var preconditionErr *services.PreconditionError
	if errors.As(err, &preconditionErr) {
		return apiError(c, fiber.StatusUnprocessableEntity, preconditionErr.Reason)
	}

	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}

func normalizeSex(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// normalizeActivity folds the hyphenated spelling used by older clients
// into the canonical underscore form.
func normalizeActivity(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	return strings.ReplaceAll(normalized, "-", "_")
}

func normalizeUnitSystem(raw string, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.UnitMetric:
		return models.UnitMetric
	case models.UnitImperial:
		return models.UnitImperial
	default:
		return fallback
	}
}
