package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// HeaderViewState holds data for the title bar.
type HeaderViewState struct {
	InnerW     int
	Title      string
	Records    int
	Rooms      int
	TitleStyle lipgloss.Style
	StatsStyle lipgloss.Style
	Bg         lipgloss.Color
}

// HeaderStats formats the record and room counters.
func HeaderStats(records, rooms int) string {
	return fmt.Sprintf("%d records · %d rooms", records, rooms)
}

// RenderHeader renders the title on the left and counters on the right.
func RenderHeader(state HeaderViewState) string {
	title := state.TitleStyle.Render(state.Title)
	stats := state.StatsStyle.Render(HeaderStats(state.Records, state.Rooms))

	gap := state.InnerW - lipgloss.Width(title) - lipgloss.Width(stats)
	if gap < 1 {
		return FitLine(state.InnerW, lipgloss.NewStyle(), title)
	}
	spacer := lipgloss.NewStyle().Background(state.Bg).Render(fmt.Sprintf("%*s", gap, ""))
	return title + spacer + stats
}
