package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/henriquefukushima/serve-ai-analysis/internal/detect"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Run represents one persisted detection run over a single stream.
type Run struct {
	ID        string
	Source    string
	FPS       float64
	CreatedAt time.Time
}

// EventRepository provides persistence for detection runs and their events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// SaveRun stores a resolved event list as a new run and returns it. Events
// are written in list order so a later load reproduces the list exactly.
func (r *EventRepository) SaveRun(source string, fps float64, events []detect.Event) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Source:    source,
		FPS:       fps,
		CreatedAt: time.Now(),
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, source, fps, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Source, run.FPS, run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	for i, e := range events {
		_, err = tx.Exec(
			`INSERT INTO serve_events
			 (id, run_id, seq, start_frame, end_frame, contact_frame,
			  start_time, end_time, duration, confidence, source)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), run.ID, i, e.StartFrame, e.EndFrame, e.ContactFrame,
			e.StartTime, e.EndTime, e.Duration, e.Confidence, e.Source,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

// GetRun retrieves a run by its ID.
func (r *EventRepository) GetRun(id string) (*Run, error) {
	run := &Run{}
	err := r.db.QueryRow(
		`SELECT id, source, fps, created_at FROM runs WHERE id = ?`, id,
	).Scan(&run.ID, &run.Source, &run.FPS, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return run, nil
}

// ListRuns retrieves all runs, newest first.
func (r *EventRepository) ListRuns() ([]*Run, error) {
	rows, err := r.db.Query(
		`SELECT id, source, fps, created_at FROM runs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.Source, &run.FPS, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ListEvents retrieves the event list of a run in its original order.
func (r *EventRepository) ListEvents(runID string) ([]detect.Event, error) {
	if _, err := r.GetRun(runID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		`SELECT start_frame, end_frame, contact_frame,
		        start_time, end_time, duration, confidence, source
		 FROM serve_events WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []detect.Event{}
	for rows.Next() {
		var e detect.Event
		err := rows.Scan(&e.StartFrame, &e.EndFrame, &e.ContactFrame,
			&e.StartTime, &e.EndTime, &e.Duration, &e.Confidence, &e.Source)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteRun removes a run and, via cascade, its events.
func (r *EventRepository) DeleteRun(id string) error {
	result, err := r.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
