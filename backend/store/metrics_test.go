package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltracker/backend/models"
)

func notesFor(subject string, scores ...int) []models.Note {
	notes := make([]models.Note, 0, len(scores))
	for _, sc := range scores {
		notes = append(notes, models.Note{Subject: subject, Score: sc, Date: "2024-03-01"})
	}
	return notes
}

func TestAverageScore(t *testing.T) {
	notes := notesFor("nav", 70, 80, 90)

	avg, ok := averageScore(notes, "nav")
	require.True(t, ok)
	assert.Equal(t, 80, avg)

	// No records means "no data", never zero
	_, ok = averageScore(notes, "meteo")
	assert.False(t, ok)
}

func TestAverageScoreRounds(t *testing.T) {
	avg, ok := averageScore(notesFor("com", 70, 71), "com")
	require.True(t, ok)
	assert.Equal(t, 71, avg) // 70.5 rounds up
}

func TestGlobalAverage(t *testing.T) {
	assert.Equal(t, 0, globalAverage(nil))
	assert.Equal(t, 85, globalAverage(notesFor("pdv", 85)))
	assert.Equal(t, 80, globalAverage(notesFor("pdv", 70, 80, 90)))
}

func TestIsUrgent(t *testing.T) {
	// Far away from the deadline: not urgent
	past := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	assert.False(t, IsUrgent("2099-01-01", past))

	// 47 hours before end of day: urgent
	deadline := time.Date(2099, time.January, 1, 23, 59, 59, 0, time.UTC)
	assert.True(t, IsUrgent("2099-01-01", deadline.Add(-47*time.Hour)))

	// Deadline already passed: not urgent
	assert.False(t, IsUrgent("2099-01-01", deadline.Add(time.Second)))

	// No date, no urgency
	assert.False(t, IsUrgent("", past))
}

func TestIsOverdue(t *testing.T) {
	deadline := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)

	assert.False(t, IsOverdue("2024-03-10", deadline.Add(-time.Hour)))
	// Exactly at the deadline instant is not overdue yet
	assert.False(t, IsOverdue("2024-03-10", deadline))
	assert.True(t, IsOverdue("2024-03-10", deadline.Add(time.Second)))

	assert.False(t, IsOverdue("", deadline))
	assert.False(t, IsOverdue("not-a-date", deadline))
}
