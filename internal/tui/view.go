package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/allot/internal/layout"
	"github.com/javiermolinar/allot/internal/tui/view"
)

const (
	headerH = 1
	footerH = 2
	gapH    = 2 // blank lines around the form
)

const helpText = "enter add · tab field · ↑/↓ student id · ctrl+n/ctrl+p select · ctrl+d delete · ctrl+o blank below · ctrl+x clear · ctrl+e export · ctrl+y copy · pgup/pgdn scroll · esc quit"

// boardHeight returns the lines left for the board.
func (m Model) boardHeight() int {
	h := m.height - headerH - footerH - gapH - fieldCount
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) boardState() view.BoardState {
	empty := "No allotments yet. Fill the form and press enter."
	if m.loading {
		empty = "Loading..."
	}
	return view.BoardState{
		InnerW:      m.width,
		BoardH:      m.boardHeight(),
		Offset:      m.scrollOffset,
		Panels:      m.boardPanels(),
		Empty:       empty,
		PanelStyle:  m.styles.PanelStyle,
		HeaderStyle: m.styles.PanelHeaderStyle,
		MutedStyle:  m.styles.MutedStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
	}
}

// maxScroll returns the largest useful board scroll offset.
func (m Model) maxScroll() int {
	_, total := view.BoardLines(m.boardState())
	if over := total - m.boardHeight(); over > 0 {
		return over
	}
	return 0
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return view.Render(view.ViewState{})
	}

	header := view.RenderHeader(view.HeaderViewState{
		InnerW:     m.width,
		Title:      "allot · room allotments",
		Records:    len(m.records),
		Rooms:      len(layout.Group(m.records)),
		TitleStyle: m.styles.TitleStyle,
		StatsStyle: m.styles.StatsStyle,
		Bg:         m.styles.colorBg,
	})

	form := view.RenderForm(view.FormViewState{
		InnerW:          m.width,
		Fields:          m.formFields(),
		LabelStyle:      m.styles.LabelStyle,
		FocusLabelStyle: m.styles.FocusLabelStyle,
		Bg:              m.styles.colorBg,
	})

	board := view.RenderBoard(m.boardState())

	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}
	footer := view.RenderFooter(view.FooterViewState{
		InnerW:      m.width,
		FooterH:     footerH,
		StatusText:  m.statusMsg,
		HelpText:    helpText,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
	})

	parts := []string{header, "", form, ""}
	if board != "" {
		parts = append(parts, board)
	}
	parts = append(parts, footer)
	base := lipgloss.JoinVertical(lipgloss.Left, parts...)

	state := view.ViewState{
		Width:       m.width,
		Height:      m.height,
		BaseContent: base,
		ShowModal:   m.mode == ModeConfirmClear,
		ModalBg:     m.styles.ModalBgColor,
	}
	if state.ShowModal {
		state.ModalContent = view.RenderConfirmClear(len(m.records), m.styles.ModalStyles())
	}
	return view.Render(state)
}
