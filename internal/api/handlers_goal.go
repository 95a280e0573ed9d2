package api

import (
	"strings"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	handler.mu.Lock()
	goal := handler.goal
	handler.mu.Unlock()

	if goal == nil {
		return c.JSON(fiber.Map{"has_goal": false})
	}
	return c.JSON(fiber.Map{"has_goal": true, "goal": goal})
}

// SuggestGoal proposes a target weight and date for a goal type without
// saving anything.
func (handler *Handler) SuggestGoal(c *fiber.Ctx) error {
	payload := goalSuggestPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return serviceError(c, &services.ValidationError{Fields: []string{"body"}})
	}

	target, err := services.SuggestGoalTarget(
		strings.ToLower(strings.TrimSpace(payload.Type)),
		payload.CurrentWeightKG,
		payload.CurrentHeightCM,
	)
	if err != nil {
		return serviceError(c, err)
	}

	now := time.Now().In(handler.location)
	return c.JSON(fiber.Map{
		"target_weight_kg": target,
		"target_date":      services.DefaultTargetDate(now),
	})
}

// SaveGoal overwrites the single active goal. The baseline weight is taken
// from the last computed profile, mirroring how the goal dialog captures
// the current state.
func (handler *Handler) SaveGoal(c *fiber.Ctx) error {
	payload := goalPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return serviceError(c, &services.ValidationError{Fields: []string{"body"}})
	}

	now := time.Now().In(handler.location)

	handler.mu.Lock()
	defer handler.mu.Unlock()

	goal, err := services.BuildGoal(
		strings.ToLower(strings.TrimSpace(payload.Type)),
		payload.TargetWeightKG,
		strings.TrimSpace(payload.TargetDate),
		handler.lastProfile.WeightKG,
		now,
	)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.persistGoal(goal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist goal")
	}
	handler.goal = &goal

	return c.JSON(fiber.Map{"goal": goal})
}
