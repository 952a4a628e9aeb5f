package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderForm_MarksFocusedField(t *testing.T) {
	state := FormViewState{
		InnerW: 60,
		Fields: []FormField{
			{Label: "Room", Input: "101"},
			{Label: "Student ID", Input: "CS001", Focused: true},
		},
		LabelStyle:      lipgloss.NewStyle(),
		FocusLabelStyle: lipgloss.NewStyle(),
	}

	lines := strings.Split(ansi.Strip(RenderForm(state)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if strings.HasPrefix(lines[0], "▸") {
		t.Errorf("unfocused field has marker: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "▸") || !strings.Contains(lines[1], "CS001") {
		t.Errorf("focused field = %q", lines[1])
	}
	// Inputs start in the same column.
	col0 := lipgloss.Width(lines[0][:strings.Index(lines[0], "101")])
	col1 := lipgloss.Width(lines[1][:strings.Index(lines[1], "CS001")])
	if col0 != col1 {
		t.Errorf("inputs not aligned:\n%s\n%s", lines[0], lines[1])
	}
}

func TestRenderHeader_Stats(t *testing.T) {
	out := ansi.Strip(RenderHeader(HeaderViewState{InnerW: 60, Title: "allot", Records: 3, Rooms: 2}))
	if !strings.HasPrefix(out, "allot") || !strings.HasSuffix(out, HeaderStats(3, 2)) {
		t.Fatalf("unexpected header %q", out)
	}
	if w := lipgloss.Width(out); w != 60 {
		t.Fatalf("header width = %d, want 60", w)
	}
}

func TestRenderFooter_Truncates(t *testing.T) {
	out := RenderFooter(FooterViewState{
		InnerW:     10,
		FooterH:    2,
		StatusText: "a status message that is long",
		HelpText:   "help",
		VAlign:     lipgloss.Top,
	})
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 10 {
			t.Fatalf("footer line width %d exceeds 10: %q", w, line)
		}
	}
}
