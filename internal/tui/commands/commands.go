// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/config"
	"github.com/javiermolinar/allot/internal/export"
	"github.com/javiermolinar/allot/internal/layout"
)

// SnapshotLoadedMsg is sent when the record list is loaded.
type SnapshotLoadedMsg struct {
	Records []allotment.Record
}

// RecordAddedMsg is sent after a record is appended.
type RecordAddedMsg struct {
	Position int
	Record   allotment.Record
}

// RecordDeletedMsg is sent after a record is removed.
type RecordDeletedMsg struct {
	Position int
}

// BlankInsertedMsg is sent after a blank seat is inserted.
type BlankInsertedMsg struct {
	Position int
}

// ClearedMsg is sent after every record is removed.
type ClearedMsg struct {
	Count int
}

// ExportedMsg is sent when the export file is written.
type ExportedMsg struct {
	Path string
}

// CopiedMsg is sent when the grid was copied to the clipboard.
type CopiedMsg struct {
	Rows int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// LoadSnapshot loads every record in position order.
func LoadSnapshot(store allotment.Store) tea.Cmd {
	return func() tea.Msg {
		records, err := store.Snapshot(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading records: %w", err)}
		}
		return SnapshotLoadedMsg{Records: records}
	}
}

// AddRecord appends a record.
func AddRecord(store allotment.Store, rec allotment.Record) tea.Cmd {
	return func() tea.Msg {
		pos, err := store.Append(context.Background(), rec)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("adding record: %w", err)}
		}
		return RecordAddedMsg{Position: pos, Record: rec}
	}
}

// DeleteRecord removes the record at pos.
func DeleteRecord(store allotment.Store, pos int) tea.Cmd {
	return func() tea.Msg {
		if err := store.DeleteAt(context.Background(), pos); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting record %d: %w", pos+1, err)}
		}
		return RecordDeletedMsg{Position: pos}
	}
}

// InsertBlank inserts a blank seat below the record at pos.
func InsertBlank(store allotment.Store, pos int) tea.Cmd {
	return func() tea.Msg {
		newPos, err := store.InsertBelow(context.Background(), pos)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("inserting below record %d: %w", pos+1, err)}
		}
		return BlankInsertedMsg{Position: newPos}
	}
}

// ClearRecords removes every record.
func ClearRecords(store allotment.Store, count int) tea.Cmd {
	return func() tea.Msg {
		if err := store.Clear(context.Background()); err != nil {
			return ErrMsg{Err: fmt.Errorf("clearing records: %w", err)}
		}
		return ClearedMsg{Count: count}
	}
}

// Export compiles the records and writes them in the configured format.
func Export(cfg *config.Config, records []allotment.Record) tea.Cmd {
	return func() tea.Msg {
		g := layout.Compile(records, layout.WithColumnWidths(cfg.Export.SeqWidth, cfg.Export.IDWidth))
		path, err := export.Save(cfg.Export.Dir, cfg.Export.Format, export.Options{SheetName: cfg.Export.SheetName}, g)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("exporting: %w", err)}
		}
		return ExportedMsg{Path: path}
	}
}

// CopyGrid copies the compiled grid as tab-separated text.
func CopyGrid(records []allotment.Record) tea.Cmd {
	return func() tea.Msg {
		g := layout.Compile(records)
		if err := clipboardWrite(g.TSV()); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Rows: g.NumRows()}
	}
}
