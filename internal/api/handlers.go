package api

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
)

const (
	blobKeyHistory     = "history"
	blobKeyGoal        = "goal"
	blobKeyPreferences = "preferences"
)

// BlobStore is the persistence collaborator: keyed get/set of opaque text
// blobs. db.BlobRepository satisfies it; tests may substitute their own.
type BlobStore interface {
	Get(key string) (string, bool, error)
	Set(key string, content string) error
}

// Handler owns the single user's durable state (history, goal,
// preferences) plus the last computed result, and maps HTTP requests onto
// the core services. The mutex guards the state; the services themselves
// stay synchronous and lock-free.
type Handler struct {
	blobs    BlobStore
	location *time.Location

	mu          sync.Mutex
	history     *services.HistoryStore
	goal        *models.Goal
	preferences models.Preferences
	lastProfile models.Profile
	lastResult  services.BMIResult
	hasResult   bool
}

type profilePayload struct {
	HeightCM   float64 `json:"height_cm"`
	WeightKG   float64 `json:"weight_kg"`
	AgeYears   int     `json:"age_years"`
	Sex        string  `json:"sex"`
	Activity   string  `json:"activity_level"`
	UnitSystem string  `json:"unit_system"`
}

type goalPayload struct {
	Type           string  `json:"type"`
	TargetWeightKG float64 `json:"target_weight_kg"`
	TargetDate     string  `json:"target_date"`
}

type goalSuggestPayload struct {
	Type            string  `json:"type"`
	CurrentWeightKG float64 `json:"current_weight_kg"`
	CurrentHeightCM float64 `json:"current_height_cm"`
}

type preferencesPayload struct {
	UnitSystem string `json:"unit_system"`
	Theme      string `json:"theme"`
}

// NewHandler loads the three persisted blobs. Malformed blobs degrade to
// defaults (logged, never fatal); storage read failures abort startup.
func NewHandler(blobs BlobStore, location *time.Location) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		blobs:       blobs,
		location:    location,
		history:     services.NewHistoryStore(),
		preferences: models.DefaultPreferences(),
	}

	historyBlob, err := loadBlob(blobs, blobKeyHistory)
	if err != nil {
		return nil, err
	}
	if err := handler.history.LoadFrom(historyBlob); err != nil {
		log.Printf("history blob unreadable, starting empty: %v", err)
	}

	goalBlob, err := loadBlob(blobs, blobKeyGoal)
	if err != nil {
		return nil, err
	}
	goal, goalErr := services.DecodeGoal(goalBlob)
	if goalErr != nil {
		log.Printf("goal blob unreadable, starting without a goal: %v", goalErr)
	}
	handler.goal = goal

	preferencesBlob, err := loadBlob(blobs, blobKeyPreferences)
	if err != nil {
		return nil, err
	}
	preferences, preferencesErr := services.DecodePreferences(preferencesBlob)
	if preferencesErr != nil {
		log.Printf("preferences blob unreadable, using defaults: %v", preferencesErr)
	}
	handler.preferences = preferences

	return handler, nil
}

func loadBlob(blobs BlobStore, key string) ([]byte, error) {
	content, found, err := blobs.Get(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return []byte(content), nil
}

func (handler *Handler) persistHistory(store *services.HistoryStore) error {
	blob, err := store.Serialize()
	if err != nil {
		return err
	}
	return handler.blobs.Set(blobKeyHistory, string(blob))
}

func (handler *Handler) persistGoal(goal models.Goal) error {
	blob, err := json.Marshal(goal)
	if err != nil {
		return err
	}
	return handler.blobs.Set(blobKeyGoal, string(blob))
}

func (handler *Handler) persistPreferences(preferences models.Preferences) error {
	blob, err := json.Marshal(preferences)
	if err != nil {
		return err
	}
	return handler.blobs.Set(blobKeyPreferences, string(blob))
}
