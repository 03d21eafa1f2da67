package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltracker/backend/models"
	"ppltracker/backend/utils"
)

// memBlob is an in-memory BlobStore for fast store tests. Persistence through
// a real backend is covered in the storage package.
type memBlob struct {
	data []byte
}

func (m *memBlob) Load() ([]byte, bool, error) {
	if m.data == nil {
		return nil, false, nil
	}
	return m.data, true, nil
}

func (m *memBlob) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memBlob) Close() error { return nil }

var testNow = time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC) // Wednesday

func newTestStore(blob *memBlob) *Store {
	s := New(blob, utils.InitLogger())
	s.now = func() time.Time { return testNow }
	return s
}

func TestLoadFreshState(t *testing.T) {
	s := newTestStore(&memBlob{})
	require.NoError(t, s.Load())

	assert.Empty(t, s.state.Assignments)
	assert.Empty(t, s.state.Notes)
	assert.Empty(t, s.state.MockExams)
	assert.NotNil(t, s.state.WeekSlots)
	assert.Equal(t, 0, s.state.WeekOffset)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	// Blob written by an older version that only knew about notes
	blob := &memBlob{data: []byte(`{"notes":[{"id":"n1","matiere":"nav","score":80,"date":"2024-03-01"}]}`)}
	s := newTestStore(blob)
	require.NoError(t, s.Load())

	assert.Len(t, s.state.Notes, 1)
	assert.NotNil(t, s.state.Assignments)
	assert.NotNil(t, s.state.WeekSlots)
	assert.NotNil(t, s.state.MockExams)
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	blob := &memBlob{data: []byte(`{not json`)}
	s := newTestStore(blob)
	require.NoError(t, s.Load())

	assert.Empty(t, s.state.Notes)
	assert.Empty(t, s.state.Assignments)
	// Nothing was persisted as a consequence of the failed load
	assert.Equal(t, []byte(`{not json`), blob.data)
}

func TestMigrateLegacySlots(t *testing.T) {
	legacy := `{"slots":[{"id":"s1","day":0,"start":"09:00","end":"10:00","matiere":"nav","desc":""},
		{"id":"s2","day":2,"start":"14:00","end":"16:00","matiere":"meteo","desc":"QCM"}],"weekOffset":0}`
	s := newTestStore(&memBlob{data: []byte(legacy)})
	require.NoError(t, s.Load())

	key := WeekKey(0, testNow)
	require.Contains(t, s.state.WeekSlots, key)
	assert.Len(t, s.state.WeekSlots[key], 2)
	assert.Equal(t, "s1", s.state.WeekSlots[key][0].ID)

	// The migrated shape has no legacy field once persisted
	s.mu.Lock()
	require.NoError(t, s.persist())
	s.mu.Unlock()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(s.blob.(*memBlob).data, &raw))
	assert.NotContains(t, raw, "slots")
	assert.Contains(t, raw, "weekSlots")
}

func TestMigrationIsIdempotent(t *testing.T) {
	// A blob that already carries weekSlots must load unchanged, even with a
	// stray legacy field next to it.
	migrated := `{"weekSlots":{"2024-W02":[{"id":"s1","day":0,"start":"09:00","end":"10:00","matiere":"nav","desc":""}]},
		"slots":[{"id":"old","day":1,"start":"08:00","end":"09:00","matiere":"com","desc":""}],"weekOffset":-5}`
	s := newTestStore(&memBlob{data: []byte(migrated)})
	require.NoError(t, s.Load())

	assert.Len(t, s.state.WeekSlots, 1)
	require.Contains(t, s.state.WeekSlots, "2024-W02")
	assert.Equal(t, "s1", s.state.WeekSlots["2024-W02"][0].ID)
	assert.Equal(t, -5, s.state.WeekOffset)
}

func TestStateRoundTrip(t *testing.T) {
	blob := &memBlob{}
	s := newTestStore(blob)
	require.NoError(t, s.Load())

	_, err := s.AddNote("nav", 80, "cours")
	require.NoError(t, err)
	_, err = s.SaveAssignment(models.Assignment{Title: "Réviser la météo", Subject: "meteo"})
	require.NoError(t, err)

	// A second store over the same blob sees the same state
	s2 := newTestStore(blob)
	require.NoError(t, s2.Load())
	assert.Len(t, s2.state.Notes, 1)
	require.Len(t, s2.state.Assignments, 1)
	assert.Equal(t, "Réviser la météo", s2.state.Assignments[0].Title)
}
