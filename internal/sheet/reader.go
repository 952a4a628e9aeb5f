// Package sheet reads exported workbooks back into a layout grid.
package sheet

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/javiermolinar/allot/internal/layout"
)

// ErrNoSheets is returned for a workbook without worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// Sheet is one worksheet read back as a grid. Roles cannot be recovered
// from a file, so every cell carries layout.RoleNone and the style flags
// found in the workbook.
type Sheet struct {
	Name string
	Grid *layout.Grid
}

// sharedStringsPart is where excelize stores the shared string table.
const sharedStringsPart = "xl/sharedStrings.xml"

// ReadFile opens an XLSX file and reads its first worksheet.
func ReadFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	return Read(f, info.Size())
}

// Read reads the first worksheet of an XLSX from r/size.
func Read(r io.ReaderAt, size int64) (*Sheet, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	table := tableStrings(wb.SharedStrings.X())
	if len(table) == 0 {
		// excelize links the table with an absolute target, which the
		// workbook loader does not resolve.
		if table, err = readSharedStrings(r, size); err != nil {
			return nil, err
		}
	}
	return readWorkbook(wb, table)
}

// readSharedStrings decodes the shared string table straight from the
// archive. A workbook without one yields a nil table.
func readSharedStrings(r io.ReaderAt, size int64) ([]string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading workbook archive: %w", err)
	}
	for _, f := range zr.File {
		if strings.TrimPrefix(f.Name, "/") != sharedStringsPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening shared strings: %w", err)
		}
		defer func() { _ = rc.Close() }()

		sst := sml.NewSst()
		if err := xml.NewDecoder(rc).Decode(sst); err != nil {
			return nil, fmt.Errorf("decoding shared strings: %w", err)
		}
		return tableStrings(sst), nil
	}
	return nil, nil
}

func tableStrings(sst *sml.Sst) []string {
	if sst == nil {
		return nil
	}
	out := make([]string, len(sst.Si))
	for i, si := range sst.Si {
		if si.T != nil {
			out[i] = *si.T
			continue
		}
		var b strings.Builder
		for _, run := range si.R {
			b.WriteString(run.T)
		}
		out[i] = b.String()
	}
	return out
}

func readWorkbook(wb *spreadsheet.Workbook, table []string) (*Sheet, error) {
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	s := sheets[0]

	merges := readMerges(s)

	// ---- find grid size ----
	maxRows, maxCols := 0, 0
	for _, row := range s.Rows() {
		if n := int(row.RowNumber()); n > maxRows {
			maxRows = n
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			if n := int(reference.ColumnToIndex(colName)) + 1; n > maxCols {
				maxCols = n
			}
		}
	}
	for _, m := range merges {
		maxRows = max(maxRows, m.EndRow+1)
		maxCols = max(maxCols, m.EndCol+1)
	}

	g := &layout.Grid{Merges: merges}
	if maxRows == 0 {
		return &Sheet{Name: s.Name(), Grid: g}, nil
	}

	g.Cells = make([][]layout.Cell, maxRows)
	for r := range g.Cells {
		g.Cells[r] = make([]layout.Cell, maxCols)
	}

	// --- fill cells ---
	for _, row := range s.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			g.Cells[rowIdx][colIdx] = readCell(wb, table, cell)
		}
	}

	// --- column widths ---
	g.ColWidths = make([]float64, maxCols)
	for c := range g.ColWidths {
		col := s.Column(uint32(c + 1))
		if col.X().WidthAttr != nil {
			g.ColWidths[c] = *col.X().WidthAttr
		}
	}

	return &Sheet{Name: s.Name(), Grid: g}, nil
}

func readMerges(s spreadsheet.Sheet) []layout.Merge {
	if s.X().MergeCells == nil {
		return nil
	}
	var merges []layout.Merge
	for _, mc := range s.X().MergeCells.MergeCell {
		from, to, err := reference.ParseRangeReference(mc.RefAttr)
		if err != nil {
			continue
		}
		merges = append(merges, layout.Merge{
			StartRow: int(from.RowIdx - 1),
			StartCol: int(from.ColumnIdx),
			EndRow:   int(to.RowIdx - 1),
			EndCol:   int(to.ColumnIdx),
		})
	}
	return merges
}

func readCell(wb *spreadsheet.Workbook, table []string, cell spreadsheet.Cell) layout.Cell {
	var out layout.Cell
	switch {
	case cell.X().TAttr == sml.ST_CellTypeS:
		if s := sharedString(table, cell.X().V); s != "" {
			out = layout.Cell{Kind: layout.CellText, Text: s}
		}
	case cell.IsEmpty():
	case cell.IsNumber():
		if v, err := cell.GetValueAsNumber(); err == nil && v == math.Trunc(v) {
			out = layout.Cell{Kind: layout.CellInt, Int: int(v)}
		} else {
			out = layout.Cell{Kind: layout.CellText, Text: cell.GetFormattedValue()}
		}
	default:
		if s := cell.GetString(); s != "" {
			out = layout.Cell{Kind: layout.CellText, Text: s}
		}
	}

	if cell.X().SAttr != nil {
		out.Style = readStyle(wb.StyleSheet, *cell.X().SAttr)
	}
	return out
}

// sharedString resolves the index stored in a cell of type s.
func sharedString(table []string, v *string) string {
	if v == nil {
		return ""
	}
	idx, err := strconv.Atoi(*v)
	if err != nil || idx < 0 || idx >= len(table) {
		return ""
	}
	return table[idx]
}

func readStyle(ss spreadsheet.StyleSheet, styleID uint32) layout.Style {
	var st layout.Style
	xfs := ss.X().CellXfs
	if xfs == nil || int(styleID) >= len(xfs.Xf) {
		return st
	}
	xf := xfs.Xf[styleID]

	if font := fontProps(ss, xf); font != nil && len(font.B) > 0 {
		st.Bold = font.B[0].ValAttr == nil || *font.B[0].ValAttr
	}
	if border := borderProps(ss, xf); border != nil && border.Left != nil {
		st.Border = border.Left.StyleAttr == sml.ST_BorderStyleThin
	}
	if xf.Alignment != nil {
		st.Centered = xf.Alignment.HorizontalAttr == sml.ST_HorizontalAlignmentCenter &&
			xf.Alignment.VerticalAttr == sml.ST_VerticalAlignmentCenter
		if xf.Alignment.WrapTextAttr != nil {
			st.Wrap = *xf.Alignment.WrapTextAttr
		}
	}
	return st
}

// fontProps extracts the underlying font XML struct of a cell format.
func fontProps(ss spreadsheet.StyleSheet, xf *sml.CT_Xf) *sml.CT_Font {
	if xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx < 0 || idx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[idx]
}

// borderProps extracts the underlying border XML struct of a cell format.
func borderProps(ss spreadsheet.StyleSheet, xf *sml.CT_Xf) *sml.CT_Border {
	if xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx < 0 || idx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[idx]
}

// ColumnName returns the spreadsheet letters of a 0-based column.
func ColumnName(col int) string {
	return reference.IndexToColumn(uint32(col))
}

// CellRef returns the A1-style reference of a 0-based cell.
func CellRef(row, col int) string {
	return ColumnName(col) + strconv.Itoa(row+1)
}

// RangeRef returns the A1:B2-style reference of a merge region.
func RangeRef(m layout.Merge) string {
	return CellRef(m.StartRow, m.StartCol) + ":" + CellRef(m.EndRow, m.EndCol)
}
