package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Grid validation errors.
var (
	ErrMergeOutOfBounds = errors.New("merge region out of bounds")
	ErrMergeOverlap     = errors.New("merge regions overlap")
)

// CellKind is the type of a cell value.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellInt
)

// Role tags what a cell means in the layout. Styles derive from it.
type Role int

const (
	RoleNone Role = iota
	RoleBanner
	RoleCourseHeader
	RoleSubject
	RoleColumnHeader
	RoleSequence
	RoleIdentifier
	RoleCount
)

var roleNames = [...]string{
	RoleNone:         "none",
	RoleBanner:       "banner",
	RoleCourseHeader: "course-header",
	RoleSubject:      "subject",
	RoleColumnHeader: "column-header",
	RoleSequence:     "sequence",
	RoleIdentifier:   "identifier",
	RoleCount:        "count",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

// IsHeader reports whether the role is a column header.
func (r Role) IsHeader() bool {
	return r == RoleColumnHeader
}

// IsData reports whether the role is a seated value.
func (r Role) IsData() bool {
	return r == RoleSequence || r == RoleIdentifier
}

// Style is the rendering flags of a cell.
type Style struct {
	Bold     bool
	Wrap     bool
	Border   bool // thin border on all four sides
	Centered bool // horizontally and vertically
}

// StyleFor returns the style of a role. Banner, course, subject and count
// cells are bold; headers wrap; every cell is bordered and centered.
func StyleFor(r Role) Style {
	s := Style{Border: true, Centered: true}
	switch r {
	case RoleBanner, RoleCourseHeader, RoleSubject, RoleCount:
		s.Bold = true
	case RoleColumnHeader:
		s.Wrap = true
	}
	return s
}

// Cell is one grid cell.
type Cell struct {
	Kind  CellKind
	Text  string
	Int   int
	Role  Role
	Style Style
}

// TextCell returns a text cell with the style of role.
// An empty string yields an empty cell that still carries the role.
func TextCell(s string, role Role) Cell {
	c := Cell{Kind: CellText, Text: s, Role: role, Style: StyleFor(role)}
	if s == "" {
		c.Kind = CellEmpty
	}
	return c
}

// IntCell returns an integer cell with the style of role.
func IntCell(n int, role Role) Cell {
	return Cell{Kind: CellInt, Int: n, Role: role, Style: StyleFor(role)}
}

// EmptyCell returns the padding cell.
func EmptyCell() Cell {
	return Cell{Style: StyleFor(RoleNone)}
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the display value of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellInt:
		return strconv.Itoa(c.Int)
	default:
		return ""
	}
}

// Merge is an inclusive rectangular merged region.
type Merge struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// Rows returns the number of rows the region spans.
func (m Merge) Rows() int { return m.EndRow - m.StartRow + 1 }

// Cols returns the number of columns the region spans.
func (m Merge) Cols() int { return m.EndCol - m.StartCol + 1 }

// Contains reports whether (row, col) lies inside the region.
func (m Merge) Contains(row, col int) bool {
	return row >= m.StartRow && row <= m.EndRow && col >= m.StartCol && col <= m.EndCol
}

// Overlaps reports whether two regions share a cell.
func (m Merge) Overlaps(o Merge) bool {
	return m.StartRow <= o.EndRow && o.StartRow <= m.EndRow &&
		m.StartCol <= o.EndCol && o.StartCol <= m.EndCol
}

func (m Merge) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", m.StartRow, m.StartCol, m.EndRow, m.EndCol)
}

// Grid is the rectangular layout consumed by every renderer.
type Grid struct {
	Cells     [][]Cell // len == rows, every row has the same length
	Merges    []Merge
	ColWidths []float64 // in characters, len == columns
}

// NumRows returns the number of rows.
func (g *Grid) NumRows() int { return len(g.Cells) }

// NumCols returns the number of columns.
func (g *Grid) NumCols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// At returns the cell at (row, col), or an empty cell outside the grid.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
		return EmptyCell()
	}
	return g.Cells[row][col]
}

// MergeAt returns the merge region whose top-left cell is (row, col).
func (g *Grid) MergeAt(row, col int) (Merge, bool) {
	for _, m := range g.Merges {
		if m.StartRow == row && m.StartCol == col {
			return m, true
		}
	}
	return Merge{}, false
}

// Covered reports whether (row, col) is hidden under a merge region
// other than as its top-left cell.
func (g *Grid) Covered(row, col int) bool {
	for _, m := range g.Merges {
		if m.Contains(row, col) && (m.StartRow != row || m.StartCol != col) {
			return true
		}
	}
	return false
}

// Validate checks that every merge region lies inside the grid and that no
// two regions overlap.
func (g *Grid) Validate() error {
	rows, cols := g.NumRows(), g.NumCols()
	for i, m := range g.Merges {
		if m.StartRow < 0 || m.StartCol < 0 || m.EndRow >= rows || m.EndCol >= cols ||
			m.StartRow > m.EndRow || m.StartCol > m.EndCol {
			return fmt.Errorf("%w: %s in %dx%d grid", ErrMergeOutOfBounds, m, rows, cols)
		}
		for _, o := range g.Merges[i+1:] {
			if m.Overlaps(o) {
				return fmt.Errorf("%w: %s and %s", ErrMergeOverlap, m, o)
			}
		}
	}
	return nil
}

// TSV returns the grid as tab-separated text, one line per row.
func (g *Grid) TSV() string {
	var b strings.Builder
	for _, row := range g.Cells {
		for c, cell := range row {
			if c > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(cell.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
