package store

import (
	"math"
	"time"

	"ppltracker/backend/models"
)

// Score thresholds the views color against.
const (
	PassThreshold     = 85 // exam pass mark
	BadgeThreshold    = 90 // subject badge
	MockPassThreshold = 75 // mock-exam pass display
)

// AverageScore returns the rounded mean over a subject's notes. ok is false
// when the subject has no notes yet; that is distinct from an average of 0.
func (s *Store) AverageScore(subject string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return averageScore(s.state.Notes, subject)
}

// GlobalAverage returns the rounded mean over all notes, 0 when empty.
func (s *Store) GlobalAverage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return globalAverage(s.state.Notes)
}

func averageScore(notes []models.Note, subject string) (int, bool) {
	sum, count := 0, 0
	for _, n := range notes {
		if n.Subject == subject {
			sum += n.Score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(count))), true
}

func globalAverage(notes []models.Note) int {
	if len(notes) == 0 {
		return 0
	}
	sum := 0
	for _, n := range notes {
		sum += n.Score
	}
	return int(math.Round(float64(sum) / float64(len(notes))))
}

// endOfDay resolves a YYYY-MM-DD date to its 23:59:59 deadline instant.
func endOfDay(date string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), true
}

// IsUrgent reports whether the deadline (end of the given day) is still ahead
// and less than 48 hours away. Empty or malformed dates are never urgent.
func IsUrgent(date string, now time.Time) bool {
	deadline, ok := endOfDay(date, now.Location())
	if !ok {
		return false
	}
	return !deadline.Before(now) && deadline.Sub(now) < 48*time.Hour
}

// IsOverdue reports whether the deadline is strictly in the past. Exactly at
// the deadline instant counts as not overdue.
func IsOverdue(date string, now time.Time) bool {
	deadline, ok := endOfDay(date, now.Location())
	if !ok {
		return false
	}
	return deadline.Before(now)
}
