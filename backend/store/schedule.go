package store

import (
	"time"

	"github.com/google/uuid"

	"ppltracker/backend/models"
)

// CurrentWeek is what the timetable view renders: the resolved week key, the
// Monday/Sunday bounds for the label, and the week's slots.
type CurrentWeek struct {
	Key    string                `json:"key"`
	Offset int                   `json:"offset"`
	Start  string                `json:"start"` // Monday, YYYY-MM-DD
	End    string                `json:"end"`   // Sunday, YYYY-MM-DD
	Slots  []models.ScheduleSlot `json:"slots"`
}

// CurrentWeek resolves the bucket for the current offset, creating it lazily.
func (s *Store) CurrentWeek() CurrentWeek {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := WeekKey(s.state.WeekOffset, now)
	if s.state.WeekSlots[key] == nil {
		s.state.WeekSlots[key] = []models.ScheduleSlot{}
	}

	monday := weekStart(s.state.WeekOffset, now)
	return CurrentWeek{
		Key:    key,
		Offset: s.state.WeekOffset,
		Start:  monday.Format("2006-01-02"),
		End:    monday.AddDate(0, 0, 6).Format("2006-01-02"),
		Slots:  append([]models.ScheduleSlot(nil), s.state.WeekSlots[key]...),
	}
}

// AddSlot validates and appends a slot to the current week's bucket only.
// Weeks visited later are unaffected.
func (s *Store) AddSlot(day int, start, end, subject, desc string) (models.ScheduleSlot, error) {
	var slot models.ScheduleSlot

	if day < 0 || day > 6 {
		return slot, validation("Jour invalide")
	}
	if !validClock(start) || !validClock(end) || start >= end {
		// Same-day HH:MM strings compare correctly as text.
		return slot, validation("L'heure de fin doit être après l'heure de début")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot = models.ScheduleSlot{
		ID:      uuid.NewString(),
		Day:     day,
		Start:   start,
		End:     end,
		Subject: subject,
		Desc:    desc,
	}

	key := WeekKey(s.state.WeekOffset, s.now())
	s.state.WeekSlots[key] = append(s.state.WeekSlots[key], slot)
	return slot, s.persist()
}

// DeleteSlot removes a slot from the current week's bucket. A missing bucket
// or id is a no-op.
func (s *Store) DeleteSlot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := WeekKey(s.state.WeekOffset, s.now())
	if slots, ok := s.state.WeekSlots[key]; ok {
		kept := slots[:0]
		for _, slot := range slots {
			if slot.ID != id {
				kept = append(kept, slot)
			}
		}
		s.state.WeekSlots[key] = kept
	}
	return s.persist()
}

// ShiftWeek moves the visible week by delta. Buckets are only created when
// the week is read or written.
func (s *Store) ShiftWeek(delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.WeekOffset += delta
	return s.state.WeekOffset, s.persist()
}

func validClock(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}
