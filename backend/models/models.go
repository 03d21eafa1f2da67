package models

// JSON tags keep the historical French field names so existing persisted
// blobs keep loading unchanged.

type Assignment struct {
	ID       string `json:"id"`
	Title    string `json:"titre"`
	Subject  string `json:"matiere"`
	DueDate  string `json:"date"`     // YYYY-MM-DD, empty when no deadline
	Priority string `json:"priorite"` // low, medium, high
	Status   string `json:"statut"`   // todo, inprogress, done
}

type ScheduleSlot struct {
	ID      string `json:"id"`
	Day     int    `json:"day"`   // 0=Monday .. 6=Sunday
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM, must be after Start
	Subject string `json:"matiere"`
	Desc    string `json:"desc"`
}

type Note struct {
	ID      string `json:"id"`
	Subject string `json:"matiere"`
	Score   int    `json:"score"` // 0..100
	Desc    string `json:"desc"`
	Date    string `json:"date"` // YYYY-MM-DD
}

type MockExam struct {
	ID       string `json:"id"`
	Subject  string `json:"matiere"`
	Score    int    `json:"score"`    // 0..100
	Duration int    `json:"duration"` // seconds
	Date     string `json:"date"`     // YYYY-MM-DD
}

// AppState is the whole persisted application state: one blob, one key.
// WeekSlots partitions timetable entries by week key ("YYYY-WNN").
type AppState struct {
	Assignments []Assignment              `json:"assignments"`
	WeekSlots   map[string][]ScheduleSlot `json:"weekSlots"`
	Notes       []Note                    `json:"notes"`
	MockExams   []MockExam                `json:"bacblancs"`
	WeekOffset  int                       `json:"weekOffset"`
}

// DefaultState returns the state a fresh install starts from.
func DefaultState() AppState {
	return AppState{
		Assignments: []Assignment{},
		WeekSlots:   map[string][]ScheduleSlot{},
		Notes:       []Note{},
		MockExams:   []MockExam{},
		WeekOffset:  0,
	}
}
