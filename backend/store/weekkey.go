package store

import (
	"fmt"
	"time"
)

// weekStart returns the Monday 00:00 of the week containing now shifted by
// offset weeks. Sunday counts as the tail of the previous week, so it rolls
// back six days.
func weekStart(offset int, now time.Time) time.Time {
	day := int(now.Weekday()) // 0=Sunday
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	d := now.AddDate(0, 0, diff+offset*7)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// WeekKey derives the "YYYY-WNN" identifier for the week at the given offset
// from now. Two offsets landing in the same calendar week yield the same key,
// which is what partitions the timetable by real week rather than by offset.
//
// The week number is raw ceil arithmetic from Jan 1 and is deliberately not
// normalized to strict ISO-8601 past week 52: persisted blobs already contain
// such keys, and only stability matters.
func WeekKey(offset int, now time.Time) string {
	monday := weekStart(offset, now)
	jan1 := time.Date(monday.Year(), time.January, 1, 0, 0, 0, 0, monday.Location())
	days := monday.YearDay() - 1
	week := (days + int(jan1.Weekday()) + 1 + 6) / 7
	return fmt.Sprintf("%d-W%02d", monday.Year(), week)
}
