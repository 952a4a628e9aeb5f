package layout

import (
	"fmt"

	"github.com/javiermolinar/allot/internal/allotment"
)

// Header texts.
const (
	SeqHeader = "SL NO"
	IDHeader  = "REGISTER NUMBER"
)

// Default column widths in characters.
const (
	DefaultSeqWidth = 8
	DefaultIDWidth  = 20
)

const (
	headerRows  = 4 // banner, course, subject, column headers
	countRow    = headerRows + RowsPerBlock
	sectionRows = countRow + 1
)

// Options configures grid compilation.
type Options struct {
	SeqWidth float64
	IDWidth  float64
}

// Option configures optional compile behavior.
type Option func(*Options)

// WithColumnWidths sets the sequence and identifier column widths.
func WithColumnWidths(seq, id float64) Option {
	return func(o *Options) {
		if seq > 0 {
			o.SeqWidth = seq
		}
		if id > 0 {
			o.IDWidth = id
		}
	}
}

// Compile groups records and lays them out as a grid.
func Compile(records []allotment.Record, opts ...Option) *Grid {
	return CompileGroups(Group(records), opts...)
}

// CompileGroups lays rooms out top to bottom, separated by one blank row.
// Each room section is sectionRows tall; its courses sit side by side.
// The result depends only on rooms, so compiling twice yields equal grids.
func CompileGroups(rooms []RoomGroup, opts ...Option) *Grid {
	o := Options{SeqWidth: DefaultSeqWidth, IDWidth: DefaultIDWidth}
	for _, opt := range opts {
		opt(&o)
	}

	b := newBuilder()
	top := 0
	for i, room := range rooms {
		if i > 0 {
			top++ // separator
		}
		b.room(top, room)
		top += sectionRows
	}

	return b.materialize(top, o)
}

// RoomColumns returns the column span of a room section.
func RoomColumns(room RoomGroup) int {
	total := 0
	for _, c := range room.Courses {
		total += Paginate(len(c.Seats)).Columns()
	}
	return total
}

// Banner returns the room banner text.
func Banner(room string) string {
	return "ROOM NO - " + room
}

// CourseLabel returns the course header text.
func CourseLabel(course, time string) string {
	if time == "" {
		return course
	}
	return fmt.Sprintf("%s (%s)", course, time)
}

// CountLabel returns the count row text.
func CountLabel(n int) string {
	return fmt.Sprintf("COUNT - %d", n)
}

type addr struct{ row, col int }

// builder collects cells sparsely during one pass over the groups.
type builder struct {
	cells  map[addr]Cell
	merges []Merge
	cols   int
}

func newBuilder() *builder {
	return &builder{cells: make(map[addr]Cell)}
}

func (b *builder) set(row, col int, c Cell) {
	b.cells[addr{row, col}] = c
	if col+1 > b.cols {
		b.cols = col + 1
	}
}

// mergeRow merges columns [from, to] of one row.
func (b *builder) mergeRow(row, from, to int) {
	if to <= from {
		return
	}
	b.merges = append(b.merges, Merge{StartRow: row, StartCol: from, EndRow: row, EndCol: to})
	if to+1 > b.cols {
		b.cols = to + 1
	}
}

func (b *builder) room(top int, room RoomGroup) {
	if total := RoomColumns(room); total > 0 {
		b.set(top, 0, TextCell(Banner(room.Room), RoleBanner))
		b.mergeRow(top, 0, total-1)
	}

	start := 0
	for _, course := range room.Courses {
		plan := Paginate(len(course.Seats))
		end := start + plan.Columns() - 1

		b.set(top+1, start, TextCell(CourseLabel(course.Course, course.Time), RoleCourseHeader))
		b.mergeRow(top+1, start, end)
		b.set(top+2, start, TextCell(course.Subject, RoleSubject))
		b.mergeRow(top+2, start, end)

		for blk := 0; blk < plan.RenderedBlocks(); blk++ {
			col := start + ColumnsPerBlock*blk
			b.set(top+3, col, TextCell(SeqHeader, RoleColumnHeader))
			b.set(top+3, col+1, TextCell(IDHeader, RoleColumnHeader))
		}

		for i, seat := range course.Seats {
			slot := plan.Slot(i)
			row := top + headerRows + slot.Row
			col := start + ColumnsPerBlock*slot.Block
			b.set(row, col, IntCell(slot.Seq, RoleSequence))
			b.set(row, col+1, TextCell(seat.StudentID, RoleIdentifier))
		}

		b.set(top+countRow, start, TextCell(CountLabel(course.Count()), RoleCount))
		b.mergeRow(top+countRow, start, end)

		start = end + 1
	}
}

// materialize pads the sparse cells into a dense rows x cols array.
func (b *builder) materialize(rows int, o Options) *Grid {
	g := &Grid{Merges: b.merges}
	if rows == 0 {
		return g
	}

	g.Cells = make([][]Cell, rows)
	for r := range g.Cells {
		row := make([]Cell, b.cols)
		for c := range row {
			if cell, ok := b.cells[addr{r, c}]; ok {
				row[c] = cell
			} else {
				row[c] = EmptyCell()
			}
		}
		g.Cells[r] = row
	}

	g.ColWidths = make([]float64, b.cols)
	for c := range g.ColWidths {
		if c%ColumnsPerBlock == 0 {
			g.ColWidths[c] = o.SeqWidth
		} else {
			g.ColWidths[c] = o.IDWidth
		}
	}

	return g
}
