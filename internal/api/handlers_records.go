package api

import (
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	handler.mu.Lock()
	records := handler.history.List()
	handler.mu.Unlock()

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

// SaveRecord recomputes the submitted profile and appends the snapshot to
// the bounded history. The blob is written before the in-memory store is
// swapped so a failed write never leaves memory ahead of storage.
func (handler *Handler) SaveRecord(c *fiber.Ctx) error {
	profile, err := handler.parseProfile(c)
	if err != nil {
		return serviceError(c, err)
	}

	result, err := services.ComputeBMI(profile.HeightCM, profile.WeightKG)
	if err != nil {
		return serviceError(c, err)
	}

	now := time.Now().In(handler.location)

	handler.mu.Lock()
	defer handler.mu.Unlock()

	record := models.Record{
		ID:        services.NewRecordID(now, handler.history),
		CreatedAt: now,
		HeightCM:  profile.HeightCM,
		WeightKG:  profile.WeightKG,
		AgeYears:  profile.AgeYears,
		Sex:       profile.Sex,
		BMI:       result.Value,
		Category:  result.Narrative.Category,
	}

	trial := handler.history.Clone()
	if err := trial.Append(record); err != nil {
		return serviceError(c, err)
	}
	if err := handler.persistHistory(trial); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist history")
	}

	handler.history = trial
	handler.lastProfile = profile
	handler.lastResult = result
	handler.hasResult = true

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"record": record})
}

func (handler *Handler) ClearRecords(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	trial := services.NewHistoryStore()
	if err := handler.persistHistory(trial); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist history")
	}
	handler.history = trial

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Analytics(c *fiber.Ctx) error {
	handler.mu.Lock()
	records := handler.history.List()
	handler.mu.Unlock()

	analytics, err := services.ComputeAnalytics(records)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(analytics)
}
