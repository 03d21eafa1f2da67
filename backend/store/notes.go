package store

import (
	"sort"

	"github.com/google/uuid"

	"ppltracker/backend/models"
)

// Notes returns the score history, most recent first.
func (s *Store) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := append([]models.Note(nil), s.state.Notes...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
	return list
}

// AddNote records a score for a subject, dated today.
func (s *Store) AddNote(subject string, score int, desc string) (models.Note, error) {
	var note models.Note
	if score < 0 || score > 100 {
		return note, validation("Score invalide (0–100)")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note = models.Note{
		ID:      uuid.NewString(),
		Subject: subject,
		Score:   score,
		Desc:    desc,
		Date:    s.now().Format("2006-01-02"),
	}
	s.state.Notes = append(s.state.Notes, note)
	return note, s.persist()
}

// DeleteNote removes by id; a missing id is not an error.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Notes[:0]
	for _, n := range s.state.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.state.Notes = kept
	return s.persist()
}
