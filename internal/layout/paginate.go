package layout

// RowsPerBlock is the fixed height of a column block.
const RowsPerBlock = 10

// ColumnsPerBlock is the width of a block: sequence number and student ID.
const ColumnsPerBlock = 2

// Plan describes how one course's seats are split into column blocks.
type Plan struct {
	Seats  int
	Blocks int // ceil(Seats / RowsPerBlock), 0 for an empty course
}

// Slot is the address of a seat inside its course.
type Slot struct {
	Row   int // 0..RowsPerBlock-1 inside the data region
	Block int
	Seq   int // 1-based, global within the course
}

// Paginate plans n seats into blocks of RowsPerBlock rows.
func Paginate(n int) Plan {
	if n < 0 {
		n = 0
	}
	return Plan{
		Seats:  n,
		Blocks: (n + RowsPerBlock - 1) / RowsPerBlock,
	}
}

// RenderedBlocks returns the number of blocks a renderer lays out.
// A course that exists always shows at least one, possibly empty, block.
func (p Plan) RenderedBlocks() int {
	if p.Blocks == 0 {
		return 1
	}
	return p.Blocks
}

// Columns returns the column span of the course.
func (p Plan) Columns() int {
	return ColumnsPerBlock * p.RenderedBlocks()
}

// Slot returns the address of the seat at index.
func (p Plan) Slot(index int) Slot {
	return Slot{
		Row:   index % RowsPerBlock,
		Block: index / RowsPerBlock,
		Seq:   index + 1,
	}
}

// Slots returns the address of every seat in order.
func (p Plan) Slots() []Slot {
	slots := make([]Slot, p.Seats)
	for i := range slots {
		slots[i] = p.Slot(i)
	}
	return slots
}
