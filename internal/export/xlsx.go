package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/javiermolinar/allot/internal/layout"
)

// XLSX renders the grid as a single-sheet workbook.
type XLSX struct {
	SheetName string
}

// NewXLSX creates an XLSX renderer writing to the named sheet.
func NewXLSX(sheetName string) *XLSX {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &XLSX{SheetName: sheetName}
}

// Format returns "xlsx".
func (x *XLSX) Format() string { return "xlsx" }

// Extension returns "xlsx".
func (x *XLSX) Extension() string { return "xlsx" }

// Render writes the workbook to w.
func (x *XLSX) Render(w io.Writer, g *layout.Grid) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := x.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	styles := newStyleCache(f)

	for r, row := range g.Cells {
		for c, cell := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}

			switch cell.Kind {
			case layout.CellText:
				err = f.SetCellStr(sheet, ref, cell.Text)
			case layout.CellInt:
				err = f.SetCellValue(sheet, ref, cell.Int)
			}
			if err != nil {
				return fmt.Errorf("writing cell %s: %w", ref, err)
			}

			styleID, err := styles.get(cell.Style)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, ref, ref, styleID); err != nil {
				return fmt.Errorf("styling cell %s: %w", ref, err)
			}
		}
	}

	for _, m := range g.Merges {
		from, err := excelize.CoordinatesToCellName(m.StartCol+1, m.StartRow+1)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.EndCol+1, m.EndRow+1)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet, from, to); err != nil {
			return fmt.Errorf("merging %s:%s: %w", from, to, err)
		}
	}

	for c, width := range g.ColWidths {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// styleCache registers each distinct layout style once per workbook.
type styleCache struct {
	f   *excelize.File
	ids map[layout.Style]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, ids: make(map[layout.Style]int)}
}

func (s *styleCache) get(st layout.Style) (int, error) {
	if id, ok := s.ids[st]; ok {
		return id, nil
	}

	xs := &excelize.Style{
		Font: &excelize.Font{Bold: st.Bold},
		Alignment: &excelize.Alignment{
			WrapText: st.Wrap,
		},
	}
	if st.Centered {
		xs.Alignment.Horizontal = "center"
		xs.Alignment.Vertical = "center"
	}
	if st.Border {
		for _, side := range []string{"left", "right", "top", "bottom"} {
			xs.Border = append(xs.Border, excelize.Border{Type: side, Color: "000000", Style: 1})
		}
	}

	id, err := s.f.NewStyle(xs)
	if err != nil {
		return 0, fmt.Errorf("creating style: %w", err)
	}
	s.ids[st] = id
	return id, nil
}
