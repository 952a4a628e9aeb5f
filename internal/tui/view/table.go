package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/allot/internal/layout"
	"github.com/javiermolinar/allot/internal/tui/theme"
)

// Board table column headers, repeated once per block.
var courseHeaders = []string{"Sl No", "Student ID", "#"}

// CourseRow is one seat in a course table. Its sequence number comes from
// its index in Rows.
type CourseRow struct {
	StudentID string
	Position  int  // 1-based store position, used by delete/insert commands
	Selected  bool // focused seat for ctrl+d / ctrl+o
}

// CourseTableState holds data needed to render one course table.
type CourseTableState struct {
	Title       string
	Subject     string
	Rows        []CourseRow
	Colors      theme.RoomColors
	TitleStyle  lipgloss.Style
	MutedStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
}

// courseGrid is a course's seats paged into table cells.
type courseGrid struct {
	headers []string
	rows    [][]string
	selRow  int // -1 when no seat is focused
	selBlk  int
}

// courseCells pages the seats into blocks of ten rows placed side by side,
// matching the exported sheet. Each block contributes one Sl No, Student ID
// and # column.
func courseCells(seats []CourseRow) courseGrid {
	plan := layout.Paginate(len(seats))
	width := len(courseHeaders) * plan.RenderedBlocks()

	g := courseGrid{
		headers: make([]string, 0, width),
		rows:    make([][]string, min(len(seats), layout.RowsPerBlock)),
		selRow:  -1,
		selBlk:  -1,
	}
	for range plan.RenderedBlocks() {
		g.headers = append(g.headers, courseHeaders...)
	}
	for i := range g.rows {
		g.rows[i] = make([]string, width)
	}
	for i, seat := range seats {
		slot := plan.Slot(i)
		id := seat.StudentID
		if id == "" {
			id = "-"
		}
		col := len(courseHeaders) * slot.Block
		g.rows[slot.Row][col] = strconv.Itoa(slot.Seq)
		g.rows[slot.Row][col+1] = id
		g.rows[slot.Row][col+2] = strconv.Itoa(seat.Position)
		if seat.Selected {
			g.selRow, g.selBlk = slot.Row, slot.Block
		}
	}
	return g
}

// RenderCourseTable renders a course heading above its seat table.
func RenderCourseTable(state CourseTableState) string {
	g := courseCells(state.Rows)

	border := lipgloss.NewStyle().Foreground(state.Colors.Accent)
	header := state.HeaderStyle.Foreground(state.Colors.Text).Background(state.Colors.Accent)
	cell := state.CellStyle.Background(state.Colors.Bg)
	cellAlt := state.CellStyle.Background(state.Colors.BgAlt)
	focused := state.CellStyle.Bold(true).Foreground(state.Colors.Text).Background(state.Colors.Accent)

	t := table.New().
		Headers(g.headers...).
		Border(lipgloss.RoundedBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderLeft(true).
		BorderRight(true).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(border).
		Rows(g.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row == g.selRow && col/len(courseHeaders) == g.selBlk {
				return focused
			}
			if row%2 == 1 {
				return cellAlt
			}
			return cell
		})

	title := state.TitleStyle.Foreground(state.Colors.Accent).Render(state.Title)
	parts := []string{title}
	if state.Subject != "" {
		parts = append(parts, state.MutedStyle.Render(state.Subject))
	}
	parts = append(parts, t.Render())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
