package services

import (
	"encoding/json"
	"strings"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

// NormalizePreferences maps any stored or submitted value onto the known
// enums, falling back to the defaults for anything unrecognized.
func NormalizePreferences(preferences models.Preferences) models.Preferences {
	normalized := models.DefaultPreferences()

	switch strings.ToLower(strings.TrimSpace(preferences.UnitSystem)) {
	case models.UnitMetric:
		normalized.UnitSystem = models.UnitMetric
	case models.UnitImperial:
		normalized.UnitSystem = models.UnitImperial
	}

	switch strings.ToLower(strings.TrimSpace(preferences.Theme)) {
	case models.ThemeLight:
		normalized.Theme = models.ThemeLight
	case models.ThemeDark:
		normalized.Theme = models.ThemeDark
	case models.ThemeAuto:
		normalized.Theme = models.ThemeAuto
	}

	return normalized
}

// DecodePreferences reads a stored preferences blob, degrading to the
// defaults with a PersistenceError when the blob is malformed.
func DecodePreferences(blob []byte) (models.Preferences, error) {
	if len(blob) == 0 {
		return models.DefaultPreferences(), nil
	}

	decoded := models.Preferences{}
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return models.DefaultPreferences(), &PersistenceError{Key: "preferences", Err: err}
	}
	return NormalizePreferences(decoded), nil
}

// DecodeGoal reads a stored goal blob. An empty blob means no active goal.
func DecodeGoal(blob []byte) (*models.Goal, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	decoded := models.Goal{}
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return nil, &PersistenceError{Key: "goal", Err: err}
	}
	if strings.TrimSpace(decoded.Type) == "" {
		return nil, nil
	}
	return &decoded, nil
}
