package allotment

import "context"

// Store defines the storage interface for the ordered record list.
// Positions are 0-based and always contiguous.
type Store interface {
	// Append adds a record at the end and returns its position.
	Append(ctx context.Context, rec Record) (int, error)

	// AppendAll adds records at the end in one batch.
	AppendAll(ctx context.Context, recs []Record) error

	// InsertBelow inserts the blank copy of the record at pos directly
	// below it and returns the new record's position.
	// Returns ErrPositionOutOfRange if no record exists at pos.
	InsertBelow(ctx context.Context, pos int) (int, error)

	// DeleteAt removes the record at pos, shifting later records up.
	// Returns ErrPositionOutOfRange if no record exists at pos.
	DeleteAt(ctx context.Context, pos int) error

	// Clear removes every record.
	Clear(ctx context.Context) error

	// Snapshot returns all records ordered by position.
	Snapshot(ctx context.Context) ([]Record, error)

	// Close releases any resources held by the store.
	Close() error
}
