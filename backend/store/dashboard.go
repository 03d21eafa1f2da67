package store

import (
	"sort"
	"time"

	"ppltracker/backend/models"
)

// SubjectRow is one line of the dashboard subject list.
type SubjectRow struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Average *int   `json:"average"` // null = no notes yet
	Pass    bool   `json:"pass"`    // average >= 85
}

// UrgentAssignment is a dashboard entry for a deadline that needs attention.
// The subject label and color are resolved here so an unknown subject id
// still renders (as the raw id on grey).
type UrgentAssignment struct {
	models.Assignment
	SubjectLabel string `json:"matiereLabel"`
	SubjectColor string `json:"matiereColor"`
	Urgent       bool   `json:"urgent"`
	Overdue      bool   `json:"overdue"`
}

// QuickStats are the four dashboard counters.
type QuickStats struct {
	Assignments int `json:"devoirs"`
	Done        int `json:"termines"`
	MockExams   int `json:"bacblancs"`
	Notes       int `json:"notes"`
}

// Badge marks a subject mastered once its average reaches 90.
type Badge struct {
	Subject string `json:"matiere"`
	Label   string `json:"label"`
	Average *int   `json:"average"`
	Earned  bool   `json:"earned"`
}

// Dashboard is the derived view-model for the main panel.
type Dashboard struct {
	GlobalAverage int                `json:"globalAverage"`
	Subjects      []SubjectRow       `json:"subjects"`
	Urgent        []UrgentAssignment `json:"urgent"`
	Stats         QuickStats         `json:"stats"`
}

// Dashboard derives the main-panel view-model from current state. Rendering
// (ring, bars, colors) is the view's business; this only supplies the data.
func (s *Store) Dashboard() Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := Dashboard{
		GlobalAverage: globalAverage(s.state.Notes),
		Subjects:      subjectRows(s.state.Notes),
		Urgent:        urgentAssignments(s.state.Assignments, s.now()),
		Stats:         quickStats(s.state),
	}
	return d
}

// Badges returns the per-subject badge states for the notes panel.
func (s *Store) Badges() []Badge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badges := make([]Badge, 0, len(models.Subjects))
	for _, subj := range models.Subjects {
		b := Badge{Subject: subj.ID, Label: subj.Label}
		if avg, ok := averageScore(s.state.Notes, subj.ID); ok {
			b.Average = &avg
			b.Earned = avg >= BadgeThreshold
		}
		badges = append(badges, b)
	}
	return badges
}

func subjectRows(notes []models.Note) []SubjectRow {
	rows := make([]SubjectRow, 0, len(models.Subjects))
	for _, subj := range models.Subjects {
		row := SubjectRow{ID: subj.ID, Label: subj.Label, Color: subj.Color}
		if avg, ok := averageScore(notes, subj.ID); ok {
			row.Average = &avg
			row.Pass = avg >= PassThreshold
		}
		rows = append(rows, row)
	}
	return rows
}

// urgentAssignments keeps the five most pressing open deadlines: everything
// not done that is overdue or due within 48 hours, soonest first.
func urgentAssignments(assignments []models.Assignment, now time.Time) []UrgentAssignment {
	urgent := []UrgentAssignment{}
	for _, a := range assignments {
		if a.Status == "done" {
			continue
		}
		u := UrgentAssignment{
			Assignment:   a,
			SubjectLabel: models.SubjectLabel(a.Subject),
			SubjectColor: models.SubjectColor(a.Subject),
			Urgent:       IsUrgent(a.DueDate, now),
			Overdue:      IsOverdue(a.DueDate, now),
		}
		if u.Urgent || u.Overdue {
			urgent = append(urgent, u)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool {
		return urgent[i].DueDate < urgent[j].DueDate
	})
	if len(urgent) > 5 {
		urgent = urgent[:5]
	}
	return urgent
}

func quickStats(state models.AppState) QuickStats {
	done := 0
	for _, a := range state.Assignments {
		if a.Status == "done" {
			done++
		}
	}
	return QuickStats{
		Assignments: len(state.Assignments),
		Done:        done,
		MockExams:   len(state.MockExams),
		Notes:       len(state.Notes),
	}
}
