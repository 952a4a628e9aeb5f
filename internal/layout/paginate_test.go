package layout

import "testing"

func TestPaginate_BlockCount(t *testing.T) {
	tests := []struct {
		n          int
		blocks     int
		rendered   int
		columnSpan int
	}{
		{0, 0, 1, 2},
		{1, 1, 1, 2},
		{9, 1, 1, 2},
		{10, 1, 1, 2},
		{11, 2, 2, 4},
		{12, 2, 2, 4},
		{20, 2, 2, 4},
		{21, 3, 3, 6},
		{-3, 0, 1, 2},
	}

	for _, tt := range tests {
		p := Paginate(tt.n)
		if p.Blocks != tt.blocks {
			t.Errorf("Paginate(%d).Blocks = %d, want %d", tt.n, p.Blocks, tt.blocks)
		}
		if p.RenderedBlocks() != tt.rendered {
			t.Errorf("Paginate(%d).RenderedBlocks() = %d, want %d", tt.n, p.RenderedBlocks(), tt.rendered)
		}
		if p.Columns() != tt.columnSpan {
			t.Errorf("Paginate(%d).Columns() = %d, want %d", tt.n, p.Columns(), tt.columnSpan)
		}
	}
}

func TestPlanSlot(t *testing.T) {
	p := Paginate(25)

	tests := []struct {
		index int
		want  Slot
	}{
		{0, Slot{Row: 0, Block: 0, Seq: 1}},
		{9, Slot{Row: 9, Block: 0, Seq: 10}},
		{10, Slot{Row: 0, Block: 1, Seq: 11}},
		{11, Slot{Row: 1, Block: 1, Seq: 12}},
		{24, Slot{Row: 4, Block: 2, Seq: 25}},
	}

	for _, tt := range tests {
		if got := p.Slot(tt.index); got != tt.want {
			t.Errorf("Slot(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestPlanSlots_NoCollisions(t *testing.T) {
	for n := 0; n <= 73; n++ {
		p := Paginate(n)
		seen := make(map[[2]int]int)
		for i, s := range p.Slots() {
			if s.Row < 0 || s.Row >= RowsPerBlock {
				t.Fatalf("n=%d index %d: row %d outside block", n, i, s.Row)
			}
			if s.Block >= p.Blocks {
				t.Fatalf("n=%d index %d: block %d >= %d", n, i, s.Block, p.Blocks)
			}
			key := [2]int{s.Row, s.Block}
			if prev, ok := seen[key]; ok {
				t.Fatalf("n=%d: index %d collides with index %d at %v", n, i, prev, key)
			}
			seen[key] = i
		}
	}
}
