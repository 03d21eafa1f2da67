package store

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"ppltracker/backend/models"
)

// Assignments returns the (optionally filtered) assignment list in display
// order: done entries last, then ascending due date, entries without a date
// at the end of their group.
func (s *Store) Assignments(subject, status string) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Assignment, 0, len(s.state.Assignments))
	for _, a := range s.state.Assignments {
		if subject != "" && a.Subject != subject {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		list = append(list, a)
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if (a.Status == "done") != (b.Status == "done") {
			return b.Status == "done"
		}
		if (a.DueDate == "") != (b.DueDate == "") {
			return b.DueDate == ""
		}
		return a.DueDate < b.DueDate
	})

	return list
}

// SaveAssignment creates the assignment when it has no id, otherwise updates
// it in place. Updating an unknown id is a silent no-op.
func (s *Store) SaveAssignment(a models.Assignment) (models.Assignment, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return a, validation("Le titre est obligatoire")
	}
	if a.Priority == "" {
		a.Priority = "medium"
	}
	if a.Status == "" {
		a.Status = "todo"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID != "" {
		for i, existing := range s.state.Assignments {
			if existing.ID == a.ID {
				s.state.Assignments[i] = a
				return a, s.persist()
			}
		}
		return a, nil
	}

	a.ID = uuid.NewString()
	s.state.Assignments = append(s.state.Assignments, a)
	return a, s.persist()
}

// DeleteAssignment removes by id; a missing id is not an error.
func (s *Store) DeleteAssignment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Assignments[:0]
	for _, a := range s.state.Assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.state.Assignments = kept
	return s.persist()
}
