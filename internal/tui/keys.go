package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/allot/internal/layout"
	"github.com/javiermolinar/allot/internal/tui/commands"
)

// Board scroll step for page keys.
const scrollStep = 10

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeConfirmClear:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleFormKeys(msg)
	}
}

// handleFormKeys handles keys while editing the entry form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "tab":
		m.setFocus(m.focus + 1)
		return m, nil

	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, nil

	case "up", "down":
		up := msg.String() == "up"
		if m.focus == fieldStudentID {
			m.stepStudentID(up)
			return m, nil
		}
		if up {
			m.setFocus(m.focus - 1)
		} else {
			m.setFocus(m.focus + 1)
		}
		return m, nil

	case "pgdown":
		m.scrollBy(scrollStep)
		return m, nil

	case "pgup":
		m.scrollBy(-scrollStep)
		return m, nil

	case "ctrl+p":
		m.moveSelection(-1)
		return m, nil

	case "ctrl+n":
		m.moveSelection(1)
		return m, nil

	case "ctrl+d":
		pos, ok := m.selection()
		if m.store == nil || !ok {
			return m.setStatus("Nothing to delete", false)
		}
		return m, commands.DeleteRecord(m.store, pos)

	case "ctrl+o":
		pos, ok := m.selection()
		if m.store == nil || !ok {
			return m.setStatus("No seat selected", false)
		}
		return m, commands.InsertBlank(m.store, pos)

	case "ctrl+x":
		if len(m.records) == 0 {
			return m.setStatus("Nothing to clear", false)
		}
		LogModeChange(m.mode, ModeConfirmClear, "ctrl+x")
		m.mode = ModeConfirmClear
		return m, nil

	case "ctrl+e":
		if len(m.records) == 0 {
			return m.setStatus("Nothing to export", false)
		}
		return m, commands.Export(m.config, m.records)

	case "ctrl+y":
		if len(m.records) == 0 {
			return m.setStatus("Nothing to copy", false)
		}
		return m, commands.CopyGrid(m.records)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleConfirmKeys handles the clear-all confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		LogModeChange(m.mode, ModeForm, "clear confirmed")
		m.mode = ModeForm
		if m.store == nil {
			return m, nil
		}
		return m, commands.ClearRecords(m.store, len(m.records))
	case "n", "N", "esc":
		LogModeChange(m.mode, ModeForm, "clear cancelled")
		m.mode = ModeForm
		return m, nil
	}
	return m, nil
}

// submit validates the form and appends the record.
func (m Model) submit() (tea.Model, tea.Cmd) {
	rec, err := m.draft().Record()
	if err != nil {
		LogError("submit", err)
		return m.setStatus(fmt.Sprintf("Error: %v", err), true)
	}
	if m.store == nil {
		return m.setStatus("Error: no store", true)
	}
	return m, commands.AddRecord(m.store, rec)
}

func (m *Model) scrollBy(delta int) {
	m.scrollOffset += delta
	if maxOffset := m.maxScroll(); m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// selection returns the store position of the focused seat. Without an
// explicit choice the last record is focused.
func (m Model) selection() (int, bool) {
	if len(m.records) == 0 {
		return 0, false
	}
	if m.selected < 0 || m.selected >= len(m.records) {
		return len(m.records) - 1, true
	}
	return m.selected, true
}

// moveSelection steps the focused seat through the board in display order:
// room by room, course by course.
func (m *Model) moveSelection(delta int) {
	pos, ok := m.selection()
	if !ok {
		return
	}
	var order []int
	for _, room := range layout.Group(m.records) {
		for _, c := range room.Courses {
			for _, seat := range c.Seats {
				order = append(order, seat.Position)
			}
		}
	}
	for i, p := range order {
		if p == pos {
			next := min(max(i+delta, 0), len(order)-1)
			m.selected = order[next]
			return
		}
	}
}
