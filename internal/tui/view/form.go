package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormField is one labelled input of the entry form.
type FormField struct {
	Label   string
	Input   string // rendered textinput view
	Focused bool
}

// FormViewState holds data needed to render the entry form.
type FormViewState struct {
	InnerW          int
	Fields          []FormField
	LabelStyle      lipgloss.Style
	FocusLabelStyle lipgloss.Style
	Bg              lipgloss.Color
}

// RenderForm renders one line per field with aligned labels.
func RenderForm(state FormViewState) string {
	labelW := 0
	for _, f := range state.Fields {
		labelW = max(labelW, lipgloss.Width(f.Label))
	}

	lines := make([]string, 0, len(state.Fields))
	for _, f := range state.Fields {
		style := state.LabelStyle
		marker := "  "
		if f.Focused {
			style = state.FocusLabelStyle
			marker = "▸ "
		}
		label := style.Width(labelW + 1).Render(f.Label)
		lines = append(lines, FitLine(state.InnerW, lipgloss.NewStyle(), marker+label+" "+f.Input))
	}
	return strings.Join(lines, "\n")
}
