package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Runs table - one row per processed stream
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			fps REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Serve events table - the resolved event list of a run
		`CREATE TABLE IF NOT EXISTS serve_events (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			start_frame INTEGER NOT NULL,
			end_frame INTEGER NOT NULL,
			contact_frame INTEGER NOT NULL,
			start_time REAL NOT NULL,
			end_time REAL NOT NULL,
			duration REAL NOT NULL,
			confidence REAL NOT NULL,
			source TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_serve_events_run
			ON serve_events(run_id, seq)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
