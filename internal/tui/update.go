package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/allot/internal/tui/commands"
)

// Status message lifetimes.
const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollBy(0)
		return m, nil

	case commands.SnapshotLoadedMsg:
		m.records = msg.Records
		m.loading = false
		m.scrollBy(0)
		return m, nil

	case commands.RecordAddedMsg:
		LogRecordAdd(msg.Position, msg.Record)
		m.advanceAfterAdd(msg.Record)
		m.selected = msg.Position
		updated, tick := m.setStatus(fmt.Sprintf("Added %s to room %s", msg.Record.StudentID, msg.Record.Room), false)
		return updated, tea.Batch(tick, commands.LoadSnapshot(m.store))

	case commands.RecordDeletedMsg:
		updated, tick := m.setStatus(fmt.Sprintf("Deleted record %d", msg.Position+1), false)
		return updated, tea.Batch(tick, commands.LoadSnapshot(m.store))

	case commands.BlankInsertedMsg:
		m.selected = msg.Position
		updated, tick := m.setStatus(fmt.Sprintf("Inserted blank seat %d", msg.Position+1), false)
		return updated, tea.Batch(tick, commands.LoadSnapshot(m.store))

	case commands.ClearedMsg:
		m.scrollOffset = 0
		m.selected = -1
		updated, tick := m.setStatus(fmt.Sprintf("Cleared %d records", msg.Count), false)
		return updated, tea.Batch(tick, commands.LoadSnapshot(m.store))

	case commands.ExportedMsg:
		LogExport(msg.Path, len(m.records))
		return m.setStatus("Exported to "+msg.Path, false)

	case commands.CopiedMsg:
		return m.setStatus(fmt.Sprintf("Copied %d rows to clipboard", msg.Rows), false)

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		LogError("command", msg.Err)
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blink and other input messages go to the focused field.
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setStatus shows a temporary message and schedules its removal.
func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	ttl := statusTTL
	if isErr {
		ttl = errorTTL
	}
	m.statusMsg = text
	m.statusErr = isErr
	m.statusTime = time.Now().Add(ttl)
	return m, tea.Tick(ttl, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
