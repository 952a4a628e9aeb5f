// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/allot/internal/allotment"
)

// SQLite implements allotment.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

// Compile-time assertion that SQLite implements allotment.Store.
var _ allotment.Store = (*SQLite)(nil)

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const insertRecord = `
	INSERT INTO records (position, room, time, course, subject, student_id, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Append adds a record at the end and returns its position.
func (s *SQLite) Append(ctx context.Context, rec allotment.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pos, err := nextPosition(ctx, tx)
	if err != nil {
		return 0, err
	}

	if err := insertAt(ctx, tx, pos, rec); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return pos, nil
}

// AppendAll adds records at the end in one transaction.
func (s *SQLite) AppendAll(ctx context.Context, recs []allotment.Record) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pos, err := nextPosition(ctx, tx)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertRecord)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().Format(time.RFC3339)
	for i, rec := range recs {
		_, err := stmt.ExecContext(ctx,
			pos+i,
			rec.Room,
			rec.Time,
			rec.Course,
			rec.Subject,
			rec.StudentID,
			now,
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// InsertBelow inserts the blank copy of the record at pos at pos+1,
// shifting later records down.
func (s *SQLite) InsertBelow(ctx context.Context, pos int) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := recordAt(ctx, tx, pos)
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE records SET position = position + 1 WHERE position > ?`, pos); err != nil {
		return 0, fmt.Errorf("shifting records: %w", err)
	}

	if err := insertAt(ctx, tx, pos+1, rec.Blank()); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return pos + 1, nil
}

// DeleteAt removes the record at pos and closes the gap.
func (s *SQLite) DeleteAt(ctx context.Context, pos int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM records WHERE position = ?`, pos)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %d", allotment.ErrPositionOutOfRange, pos)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE records SET position = position - 1 WHERE position > ?`, pos); err != nil {
		return fmt.Errorf("shifting records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Clear removes every record.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	return nil
}

// Snapshot returns all records ordered by position.
func (s *SQLite) Snapshot(ctx context.Context) ([]allotment.Record, error) {
	query := `
		SELECT room, time, course, subject, student_id
		FROM records
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []allotment.Record
	for rows.Next() {
		var r allotment.Record
		if err := rows.Scan(&r.Room, &r.Time, &r.Course, &r.Subject, &r.StudentID); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func nextPosition(ctx context.Context, tx *sql.Tx) (int, error) {
	var pos int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM records`).Scan(&pos); err != nil {
		return 0, fmt.Errorf("reading next position: %w", err)
	}
	return pos, nil
}

func insertAt(ctx context.Context, tx *sql.Tx, pos int, rec allotment.Record) error {
	_, err := tx.ExecContext(ctx, insertRecord,
		pos,
		rec.Room,
		rec.Time,
		rec.Course,
		rec.Subject,
		rec.StudentID,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func recordAt(ctx context.Context, tx *sql.Tx, pos int) (allotment.Record, error) {
	var r allotment.Record
	err := tx.QueryRowContext(ctx,
		`SELECT room, time, course, subject, student_id FROM records WHERE position = ?`, pos,
	).Scan(&r.Room, &r.Time, &r.Course, &r.Subject, &r.StudentID)
	if err == sql.ErrNoRows {
		return allotment.Record{}, fmt.Errorf("%w: %d", allotment.ErrPositionOutOfRange, pos)
	}
	if err != nil {
		return allotment.Record{}, fmt.Errorf("querying record: %w", err)
	}
	return r, nil
}
