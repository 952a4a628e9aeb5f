package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/allot/internal/tui/theme"
)

func testTheme() *theme.Theme {
	return &theme.Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#ff00ff",
		Pink:        "#f5c2e7",
		Blue:        "#89b4fa",
		Green:       "#a6e3a1",
		Orange:      "#fab387",
		Purple:      "#cba6f7",
	}
}

func TestStylesBackgroundCoverage(t *testing.T) {
	palette := testTheme()
	styles := NewStyles(palette)

	assertBg := func(t *testing.T, name string, style lipgloss.Style, want string) {
		t.Helper()
		bg, ok := style.GetBackground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
		}
		if bg != lipgloss.Color(want) {
			t.Fatalf("%s background = %q, want %q", name, bg, want)
		}
	}

	assertBg(t, "TitleStyle", styles.TitleStyle, palette.Bg)
	assertBg(t, "StatsStyle", styles.StatsStyle, palette.Bg)
	assertBg(t, "StatusStyle", styles.StatusStyle, palette.Bg)
	assertBg(t, "ErrorStyle", styles.ErrorStyle, palette.Bg)
	assertBg(t, "HelpStyle", styles.HelpStyle, palette.Bg)
}

func TestStylesRoomColorsCycle(t *testing.T) {
	palette := testTheme()
	styles := NewStyles(palette)

	tests := []struct {
		ordinal int
		want    string
	}{
		{0, palette.Pink},
		{1, palette.Blue},
		{2, palette.Green},
		{3, palette.Orange},
		{4, palette.Purple},
		{5, palette.Pink},
	}
	for _, tt := range tests {
		if got := styles.RoomColors(tt.ordinal).Accent; got != lipgloss.Color(tt.want) {
			t.Errorf("RoomColors(%d).Accent = %q, want %q", tt.ordinal, got, tt.want)
		}
	}
}
