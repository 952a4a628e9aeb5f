package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS records (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			position    INTEGER NOT NULL,
			room        TEXT NOT NULL,
			time        TEXT NOT NULL DEFAULT '',
			course      TEXT NOT NULL,
			subject     TEXT NOT NULL DEFAULT '',
			student_id  TEXT NOT NULL DEFAULT '',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_records_position ON records(position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating records table: %w", err)
	}

	return nil
}
