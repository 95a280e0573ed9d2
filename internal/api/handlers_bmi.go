package api

import (
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// parseProfile reads a measurement payload, converts imperial input to the
// metric units the engine works in and validates the whole profile.
func (handler *Handler) parseProfile(c *fiber.Ctx) (models.Profile, error) {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.Profile{}, &services.ValidationError{Fields: []string{"body"}}
	}

	handler.mu.Lock()
	preferredUnits := handler.preferences.UnitSystem
	handler.mu.Unlock()

	unitSystem := normalizeUnitSystem(payload.UnitSystem, preferredUnits)
	profile := services.ProfileToMetric(models.Profile{
		HeightCM: payload.HeightCM,
		WeightKG: payload.WeightKG,
		AgeYears: payload.AgeYears,
		Sex:      normalizeSex(payload.Sex),
		Activity: normalizeActivity(payload.Activity),
	}, unitSystem)

	if err := services.ValidateProfile(profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// ComputeBMI runs the full computation pipeline: BMI and both
// classifications, ring values, guidance and the energy estimate. Nothing
// is persisted here; saving is a separate explicit action.
func (handler *Handler) ComputeBMI(c *fiber.Ctx) error {
	profile, err := handler.parseProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	result, err := services.ComputeBMI(profile.HeightCM, profile.WeightKG)
	if err != nil {
		return serviceError(c, err)
	}

	guidance, err := services.GenerateRecommendations(result.Value, profile.AgeYears, profile.Sex, profile.Activity)
	if err != nil {
		return serviceError(c, err)
	}

	energy, err := services.EstimateEnergy(profile)
	if err != nil {
		return serviceError(c, err)
	}

	handler.mu.Lock()
	handler.lastProfile = profile
	handler.lastResult = result
	handler.hasResult = true
	handler.mu.Unlock()

	ringClass := services.RingClass(result.Value)
	return c.JSON(fiber.Map{
		"bmi": result,
		"ring": fiber.Map{
			"fraction": services.RingFraction(result.Exact),
			"class":    ringClass,
			"color":    services.RingColor(ringClass),
		},
		"guidance": guidance,
		"energy":   energy,
	})
}

// ShareMessage returns the canonical result text for the platform share or
// clipboard facility. It needs a prior computation to share.
func (handler *Handler) ShareMessage(c *fiber.Ctx) error {
	handler.mu.Lock()
	hasResult := handler.hasResult
	result := handler.lastResult
	handler.mu.Unlock()

	if !hasResult {
		return serviceError(c, &services.PreconditionError{Reason: "calculate BMI before sharing"})
	}

	return c.JSON(fiber.Map{
		"message":  services.BuildShareMessage(result.Value, result.Narrative.Category),
		"bmi":      result.Value,
		"category": result.Narrative.Category,
	})
}
