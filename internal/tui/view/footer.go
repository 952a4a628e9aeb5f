package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW      int
	FooterH     int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooter renders status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	s := FitLine(state.InnerW, state.StatusStyle, state.StatusText) + "\n"
	s += FitLine(state.InnerW, state.HelpStyle, state.HelpText)

	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, s, state.Bg)
}
