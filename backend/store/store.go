package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"ppltracker/backend/models"
	"ppltracker/backend/storage"
)

// Store owns the in-memory application state and writes it back through the
// blob store after every mutation. One instance is shared by all handlers;
// the mutex makes concurrent HTTP access safe.
type Store struct {
	mu    sync.RWMutex
	blob  storage.BlobStore
	state models.AppState
	now   func() time.Time
	log   *log.Logger
}

func New(blob storage.BlobStore, logger *log.Logger) *Store {
	return &Store{
		blob:  blob,
		state: models.DefaultState(),
		now:   time.Now,
		log:   logger,
	}
}

// Load hydrates the state from the blob store. A missing blob yields the
// default state; an unparsable one is logged and discarded so the app always
// starts usable. Legacy blobs with a flat "slots" list are upgraded into
// week buckets.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.DefaultState()

	data, found, err := s.blob.Load()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var p struct {
		models.AppState
		LegacySlots []models.ScheduleSlot `json:"slots"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Printf("WARN: could not load saved state, starting fresh: %v", err)
		return nil
	}

	// Merge onto defaults so fields added after a blob was written keep
	// their empty value instead of disappearing.
	if p.Assignments != nil {
		s.state.Assignments = p.Assignments
	}
	if p.Notes != nil {
		s.state.Notes = p.Notes
	}
	if p.MockExams != nil {
		s.state.MockExams = p.MockExams
	}
	s.state.WeekOffset = p.WeekOffset

	if p.WeekSlots != nil {
		s.state.WeekSlots = p.WeekSlots
	} else if len(p.LegacySlots) > 0 {
		// One-time upgrade: the whole legacy list lands in the week the
		// stored offset pointed at. Re-running is a no-op because migrated
		// blobs always carry weekSlots.
		key := WeekKey(p.WeekOffset, s.now())
		s.state.WeekSlots[key] = p.LegacySlots
	}

	return nil
}

// persist writes the full state through the blob store. Callers hold the
// write lock, so the snapshot is consistent.
func (s *Store) persist() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return s.blob.Save(data)
}
