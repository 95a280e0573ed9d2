package services

import (
	"encoding/json"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

// HistoryCapacity caps the bounded log; the oldest record is evicted when
// an append would exceed it.
const HistoryCapacity = 20

// HistoryStore is the append-bounded, newest-first log of saved
// computations. It is storage-agnostic: persistence happens through the
// Serialize/LoadFrom blob round-trip.
type HistoryStore struct {
	records []models.Record
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{records: make([]models.Record, 0, HistoryCapacity)}
}

// Append inserts the record at the front and evicts the tail beyond
// capacity. The record must be complete; nothing else is validated.
func (store *HistoryStore) Append(record models.Record) error {
	fields := make([]string, 0, 4)
	if record.ID == 0 {
		fields = append(fields, "id")
	}
	if record.CreatedAt.IsZero() {
		fields = append(fields, "created_at")
	}
	if record.HeightCM <= 0 {
		fields = append(fields, "height_cm")
	}
	if record.WeightKG <= 0 {
		fields = append(fields, "weight_kg")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	store.records = append([]models.Record{record}, store.records...)
	if len(store.records) > HistoryCapacity {
		store.records = store.records[:HistoryCapacity]
	}
	return nil
}

// List returns a newest-first snapshot; mutating it does not touch the store.
func (store *HistoryStore) List() []models.Record {
	snapshot := make([]models.Record, len(store.records))
	copy(snapshot, store.records)
	return snapshot
}

func (store *HistoryStore) Len() int {
	return len(store.records)
}

func (store *HistoryStore) Clear() {
	store.records = store.records[:0]
}

// Clone is used for scoped persistence: mutate the clone, write it out,
// and only swap it in once the write succeeded.
func (store *HistoryStore) Clone() *HistoryStore {
	return &HistoryStore{records: store.List()}
}

func (store *HistoryStore) Serialize() ([]byte, error) {
	return json.Marshal(store.records)
}

// LoadFrom replaces the store contents with the decoded blob. A malformed
// blob resets the store to empty and reports a PersistenceError so the
// caller can degrade instead of crashing.
func (store *HistoryStore) LoadFrom(blob []byte) error {
	store.records = store.records[:0]
	if len(blob) == 0 {
		return nil
	}

	decoded := make([]models.Record, 0, HistoryCapacity)
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return &PersistenceError{Key: "history", Err: err}
	}

	if len(decoded) > HistoryCapacity {
		decoded = decoded[:HistoryCapacity]
	}
	store.records = decoded
	return nil
}

// NewRecordID derives a unique record identifier from the wall clock,
// bumping past the newest existing ID when two saves land in the same
// millisecond.
func NewRecordID(now time.Time, store *HistoryStore) int64 {
	id := now.UnixMilli()
	if store != nil && store.Len() > 0 {
		if newest := store.records[0].ID; id <= newest {
			id = newest + 1
		}
	}
	return id
}
