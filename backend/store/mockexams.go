package store

import (
	"sort"

	"github.com/google/uuid"

	"ppltracker/backend/models"
)

// MockExams returns the mock-exam history, most recent first.
func (s *Store) MockExams() []models.MockExam {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := append([]models.MockExam(nil), s.state.MockExams...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})
	return list
}

// SaveMockExamScore records a finished mock exam. The result also feeds the
// regular score history, so one validated submission appends exactly one
// MockExam and one derived Note; a rejected score writes neither.
func (s *Store) SaveMockExamScore(subject string, score, durationSeconds int) (models.MockExam, error) {
	var exam models.MockExam
	if score < 0 || score > 100 {
		return exam, validation("Score invalide (0–100)")
	}
	if durationSeconds <= 0 {
		return exam, validation("Durée invalide")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := s.now().Format("2006-01-02")
	exam = models.MockExam{
		ID:       uuid.NewString(),
		Subject:  subject,
		Score:    score,
		Duration: durationSeconds,
		Date:     date,
	}
	s.state.MockExams = append(s.state.MockExams, exam)
	s.state.Notes = append(s.state.Notes, models.Note{
		ID:      uuid.NewString(),
		Subject: subject,
		Score:   score,
		Desc:    "Bac blanc",
		Date:    date,
	})
	return exam, s.persist()
}

// DeleteMockExam removes by id; the derived note stays, as the score was
// genuinely obtained. A missing id is not an error.
func (s *Store) DeleteMockExam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.MockExams[:0]
	for _, e := range s.state.MockExams {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.state.MockExams = kept
	return s.persist()
}
