// Package tui provides the terminal user interface for allot.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/config"
	"github.com/javiermolinar/allot/internal/tui/commands"
	"github.com/javiermolinar/allot/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeForm         Mode = iota
	ModeConfirmClear      // Waiting for y/n before wiping every record
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  allotment.Store
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Entry form
	inputs []textinput.Model
	focus  int

	// State
	records  []allotment.Record
	mode     Mode
	loading  bool
	selected int // store position of the focused seat, -1 follows the last record

	// Terminal dimensions and layout
	width        int
	height       int
	scrollOffset int // Board scroll in lines

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // statusMsg is an error
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a new TUI model.
func New(store allotment.Store, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	return &Model{
		store:    store,
		config:   cfg,
		theme:    t,
		styles:   styles,
		inputs:   newFormInputs(styles),
		focus:    fieldRoom,
		mode:     ModeForm,
		loading:  store != nil,
		selected: -1,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, commands.LoadSnapshot(m.store))
}

// RunWithDebug starts the TUI with optional debug logging. When store is
// nil the configured database is opened and closed on exit.
func RunWithDebug(store allotment.Store, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	ownStore := store == nil
	if ownStore {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		store, err = initializeStorage(cfg, state)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	model := New(store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
