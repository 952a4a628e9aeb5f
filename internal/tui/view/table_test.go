package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/allot/internal/tui/theme"
)

func TestRenderCourseTableIncludesHeaderAndRows(t *testing.T) {
	state := CourseTableState{
		Title:   "CS101 (09:30)",
		Subject: "Algorithms",
		Rows: []CourseRow{
			{StudentID: "CS001", Position: 1},
			{StudentID: "", Position: 4},
		},
		Colors: theme.RoomColors{Accent: lipgloss.Color("#ff0000")},
	}

	out := RenderCourseTable(state)
	for _, want := range []string{"CS101 (09:30)", "Algorithms", "Sl No", "Student ID", "CS001", "-", "4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %q", want, out)
		}
	}
}

func TestRenderCourseTableOmitsEmptySubject(t *testing.T) {
	out := RenderCourseTable(CourseTableState{Title: "MA101"})
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "MA101") {
		t.Fatalf("expected title on first line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "╭") {
		t.Fatalf("expected table border right after title, got %q", lines[1])
	}
}

func seatRows(n int) []CourseRow {
	rows := make([]CourseRow, n)
	for i := range rows {
		rows[i] = CourseRow{StudentID: fmt.Sprintf("S%03d", i+1), Position: i + 1}
	}
	return rows
}

func TestCourseCells_PagesIntoBlocks(t *testing.T) {
	tests := []struct {
		name     string
		seats    int
		wantCols int
		wantRows int
	}{
		{"empty", 0, 3, 0},
		{"partial block", 4, 3, 4},
		{"one full block", 10, 3, 10},
		{"spills into second block", 11, 6, 10},
		{"three blocks", 25, 9, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := courseCells(seatRows(tt.seats))
			if len(g.headers) != tt.wantCols {
				t.Errorf("headers = %d, want %d", len(g.headers), tt.wantCols)
			}
			if len(g.rows) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(g.rows), tt.wantRows)
			}
			if g.selRow != -1 {
				t.Errorf("selRow = %d, want -1 without a focused seat", g.selRow)
			}
		})
	}
}

func TestCourseCells_SlotAddresses(t *testing.T) {
	rows := seatRows(25)
	rows[11].StudentID = ""
	cells := courseCells(rows).rows

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "1"},
		{0, 1, "S001"},
		{9, 1, "S010"},
		{0, 3, "11"},
		{0, 4, "S011"},
		{1, 4, "-"},
		{1, 5, "12"},
		{4, 7, "S025"},
		{5, 7, ""},
	}
	for _, tt := range tests {
		if got := cells[tt.row][tt.col]; got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRenderCourseTable_BlocksSideBySide(t *testing.T) {
	out := RenderCourseTable(CourseTableState{Title: "CS101 (09:30)", Rows: seatRows(25)})
	lines := strings.Split(out, "\n")

	// title, top border, header, header rule, ten rows, bottom border
	if len(lines) != 15 {
		t.Fatalf("25 seats rendered as %d lines, want 15:\n%s", len(lines), out)
	}
	if n := strings.Count(lines[2], "Sl No"); n != 3 {
		t.Errorf("header repeats Sl No %d times, want 3: %q", n, lines[2])
	}
	first := lines[4]
	for _, id := range []string{"S001", "S011", "S021"} {
		if !strings.Contains(first, id) {
			t.Errorf("first seat row missing %s: %q", id, first)
		}
	}
	if !strings.Contains(lines[13], "S010") || !strings.Contains(lines[13], "S020") {
		t.Errorf("last seat row = %q", lines[13])
	}
}

func TestCourseCells_FocusedSeat(t *testing.T) {
	rows := seatRows(25)
	rows[13].Selected = true

	g := courseCells(rows)
	if g.selRow != 3 || g.selBlk != 1 {
		t.Fatalf("focused seat at row %d block %d, want row 3 block 1", g.selRow, g.selBlk)
	}
	if got := g.rows[g.selRow][len(courseHeaders)*g.selBlk+1]; got != "S014" {
		t.Errorf("focused id = %q, want S014", got)
	}
}
