package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSlotValidation(t *testing.T) {
	s := newTestStore(&memBlob{})
	require.NoError(t, s.Load())

	_, err := s.AddSlot(0, "10:00", "09:00", "nav", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = s.AddSlot(0, "09:00", "09:00", "nav", "")
	assert.ErrorAs(t, err, &verr)

	_, err = s.AddSlot(7, "09:00", "10:00", "nav", "")
	assert.ErrorAs(t, err, &verr)

	_, err = s.AddSlot(0, "9h00", "10:00", "nav", "")
	assert.ErrorAs(t, err, &verr)

	// Nothing was stored
	assert.Empty(t, s.CurrentWeek().Slots)
}

func TestAddSlotGoesToCurrentWeekOnly(t *testing.T) {
	s := newTestStore(&memBlob{})
	require.NoError(t, s.Load())

	slot, err := s.AddSlot(0, "09:00", "10:00", "nav", "Cartes VFR")
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)

	week := s.CurrentWeek()
	require.Len(t, week.Slots, 1)
	assert.Equal(t, slot.ID, week.Slots[0].ID)

	// The next week starts empty; adding there leaves this week alone
	_, err = s.ShiftWeek(1)
	require.NoError(t, err)
	assert.Empty(t, s.CurrentWeek().Slots)

	_, err = s.AddSlot(2, "14:00", "15:00", "meteo", "")
	require.NoError(t, err)
	assert.Len(t, s.CurrentWeek().Slots, 1)

	_, err = s.ShiftWeek(-1)
	require.NoError(t, err)
	require.Len(t, s.CurrentWeek().Slots, 1)
	assert.Equal(t, slot.ID, s.CurrentWeek().Slots[0].ID)
}

func TestDeleteSlotScopedToCurrentWeek(t *testing.T) {
	s := newTestStore(&memBlob{})
	require.NoError(t, s.Load())

	slot, err := s.AddSlot(0, "09:00", "10:00", "nav", "")
	require.NoError(t, err)

	// Deleting from another week is a no-op
	_, err = s.ShiftWeek(1)
	require.NoError(t, err)
	require.NoError(t, s.DeleteSlot(slot.ID))

	_, err = s.ShiftWeek(-1)
	require.NoError(t, err)
	assert.Len(t, s.CurrentWeek().Slots, 1)

	require.NoError(t, s.DeleteSlot(slot.ID))
	assert.Empty(t, s.CurrentWeek().Slots)

	// Unknown ids are silently ignored
	assert.NoError(t, s.DeleteSlot("nope"))
}

func TestShiftWeekDoesNotCreateBuckets(t *testing.T) {
	s := newTestStore(&memBlob{})
	require.NoError(t, s.Load())

	offset, err := s.ShiftWeek(3)
	require.NoError(t, err)
	assert.Equal(t, 3, offset)
	assert.Empty(t, s.state.WeekSlots)

	// Reading lazily creates the bucket
	week := s.CurrentWeek()
	assert.Equal(t, WeekKey(3, testNow), week.Key)
	assert.Contains(t, s.state.WeekSlots, week.Key)
}

func TestCurrentWeekBounds(t *testing.T) {
	s := newTestStore(&memBlob{})
	require.NoError(t, s.Load())

	week := s.CurrentWeek()
	assert.Equal(t, "2024-W11", week.Key)
	assert.Equal(t, "2024-03-11", week.Start)
	assert.Equal(t, "2024-03-17", week.End)
}
