package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/henriquefukushima/serve-ai-analysis/internal/detect"
)

func testEvents() []detect.Event {
	return []detect.Event{
		{
			StartFrame: 10, EndFrame: 70, ContactFrame: 40,
			StartTime: 0.3333333333333333, EndTime: 2.3333333333333335,
			Duration: 2.0000000000000004, Confidence: 1.0, Source: "match.mp4",
		},
		{
			StartFrame: 160, EndFrame: 220, ContactFrame: 190,
			StartTime: 5.333333333333333, EndTime: 7.333333333333333,
			Duration: 2.0, Confidence: 0.85, Source: "match.mp4",
		},
	}
}

func TestStore_SaveAndLoadRun(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "serves.db"))
	require.NoError(t, err)
	defer s.Close()

	repo := s.Events()
	events := testEvents()

	run, err := repo.SaveRun("match.mp4", 30.0, events)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	// The round trip must reproduce every field exactly
	loaded, err := repo.ListEvents(run.ID)
	require.NoError(t, err)
	require.Equal(t, events, loaded)

	got, err := repo.GetRun(run.ID)
	require.NoError(t, err)
	require.Equal(t, "match.mp4", got.Source)
	require.Equal(t, 30.0, got.FPS)
}

func TestStore_EmptyRun(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "serves.db"))
	require.NoError(t, err)
	defer s.Close()

	repo := s.Events()

	// An empty event list is a valid result and must round trip as such
	run, err := repo.SaveRun("quiet.mp4", 30.0, nil)
	require.NoError(t, err)

	loaded, err := repo.ListEvents(run.ID)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestStore_ListRuns(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "serves.db"))
	require.NoError(t, err)
	defer s.Close()

	repo := s.Events()
	_, err = repo.SaveRun("a.mp4", 30.0, nil)
	require.NoError(t, err)
	_, err = repo.SaveRun("b.mp4", 25.0, nil)
	require.NoError(t, err)

	runs, err := repo.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestStore_DeleteRunCascades(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "serves.db"))
	require.NoError(t, err)
	defer s.Close()

	repo := s.Events()
	run, err := repo.SaveRun("match.mp4", 30.0, testEvents())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRun(run.ID))

	_, err = repo.GetRun(run.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.ListEvents(run.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Orphaned events must be gone too
	var count int
	require.NoError(t, s.DB().QueryRow(
		`SELECT COUNT(*) FROM serve_events`).Scan(&count))
	require.Zero(t, count)
}

func TestStore_NotFound(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "serves.db"))
	require.NoError(t, err)
	defer s.Close()

	repo := s.Events()

	_, err = repo.GetRun("missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repo.DeleteRun("missing"), ErrNotFound)
}

func TestSaveLoadEvents_JSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	events := testEvents()

	require.NoError(t, SaveEvents(events, path))

	loaded, err := LoadEvents(path)
	require.NoError(t, err)
	require.Equal(t, events, loaded)
}

func TestLoadEvents_MissingFile(t *testing.T) {
	_, err := LoadEvents(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
