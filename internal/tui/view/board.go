package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/allot/internal/tui/theme"
)

// RoomPanel is one room on the board.
type RoomPanel struct {
	Room    string
	Total   int
	Colors  theme.RoomColors
	Courses []CourseTableState
}

// BoardState holds data needed to render the allotment board.
type BoardState struct {
	InnerW      int
	BoardH      int
	Offset      int // scroll offset in lines
	Panels      []RoomPanel
	Empty       string
	PanelStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	MutedStyle  lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderRoomPanel renders a bordered panel with the room header and its
// course tables side by side.
func RenderRoomPanel(p RoomPanel, panelStyle, headerStyle lipgloss.Style) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Foreground(p.Colors.Accent).Render(fmt.Sprintf("Room No: %s", p.Room)),
		"   ",
		headerStyle.Render(fmt.Sprintf("Total Students: %d", p.Total)),
	)

	tables := make([]string, 0, len(p.Courses)*2)
	for i, c := range p.Courses {
		if i > 0 {
			tables = append(tables, "  ")
		}
		tables = append(tables, RenderCourseTable(c))
	}

	body := header
	if len(tables) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, header, "", lipgloss.JoinHorizontal(lipgloss.Top, tables...))
	}

	return panelStyle.BorderForeground(p.Colors.Accent).Render(body)
}

// BoardLines renders every panel and returns the full board height in lines.
func BoardLines(state BoardState) (string, int) {
	if len(state.Panels) == 0 {
		return state.MutedStyle.Render(state.Empty), 1
	}
	panels := make([]string, 0, len(state.Panels))
	for _, p := range state.Panels {
		panels = append(panels, RenderRoomPanel(p, state.PanelStyle, state.HeaderStyle))
	}
	board := lipgloss.JoinVertical(lipgloss.Left, panels...)
	return board, lipgloss.Height(board)
}

// RenderBoard renders the visible window of the board.
func RenderBoard(state BoardState) string {
	if state.BoardH <= 0 {
		return ""
	}
	board, _ := BoardLines(state)
	visible := ClipLines(board, state.InnerW, state.BoardH, state.Offset)
	return PlaceBox(state.InnerW, state.BoardH, state.VAlign, visible, state.Bg)
}
