package api

import (
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	handler.mu.Lock()
	preferences := handler.preferences
	handler.mu.Unlock()

	return c.JSON(preferences)
}

// UpdatePreferences normalizes the submitted values onto the known enums
// and persists them before committing in memory.
func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	payload := preferencesPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return serviceError(c, &services.ValidationError{Fields: []string{"body"}})
	}

	preferences := services.NormalizePreferences(models.Preferences{
		UnitSystem: payload.UnitSystem,
		Theme:      payload.Theme,
	})

	handler.mu.Lock()
	defer handler.mu.Unlock()

	if err := handler.persistPreferences(preferences); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist preferences")
	}
	handler.preferences = preferences

	return c.JSON(preferences)
}
