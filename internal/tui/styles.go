// Package tui provides the terminal user interface for allot.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/allot/internal/tui/theme"
	"github.com/javiermolinar/allot/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color
	colorWarning lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style
	StatsStyle lipgloss.Style

	// Entry form
	LabelStyle       lipgloss.Style
	FocusLabelStyle  lipgloss.Style
	InputTextStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style
	CursorStyle      lipgloss.Style

	// Board
	PanelStyle       lipgloss.Style
	PanelHeaderStyle lipgloss.Style
	CourseTitleStyle lipgloss.Style
	MutedStyle       lipgloss.Style
	TableHeaderStyle lipgloss.Style
	TableCellStyle   lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.StatsStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.FocusLabelStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	s.PanelHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg)

	s.CourseTitleStyle = lipgloss.NewStyle().
		Bold(true)

	s.MutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.TableCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	s.ModalBgColor = modal.Bg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(48).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg).
		Padding(0, 1)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg).
		Padding(0, 1)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg).
		Padding(0, 1)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight).
		Bold(true).
		Padding(0, 1)

	return s
}

// RoomColors returns the panel colors for the room at ordinal i.
func (s *Styles) RoomColors(i int) theme.RoomColors {
	return s.palette.Room(i)
}

// ModalStyles returns the subset of styles used by view modal helpers.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}
