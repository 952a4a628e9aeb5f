package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/sheet"
)

func (a *App) inspectCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "Print the contents of an exported workbook",
		Long: `Read a workbook back and print its non-empty rows, merged regions and
column widths. Useful to check an export without a spreadsheet program.`,
		Example: `  allot inspect room_allotments.xlsx`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			s, err := sheet.ReadFile(path)
			if err != nil {
				return err
			}

			printSheet(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printSheet(w io.Writer, s *sheet.Sheet) {
	g := s.Grid
	fmt.Fprintf(w, "=== %s ===\n", formatHeader(s.Name))
	fmt.Fprintf(w, "%s\n\n", formatMuted(fmt.Sprintf("%d rows x %d columns", g.NumRows(), g.NumCols())))

	for r := 0; r < g.NumRows(); r++ {
		var cells []string
		for c := 0; c < g.NumCols(); c++ {
			cell := g.At(r, c)
			if cell.IsEmpty() || g.Covered(r, c) {
				continue
			}
			text := cell.String()
			if cell.Style.Bold {
				text = formatHeader(text)
			}
			cells = append(cells, fmt.Sprintf("%s=%s", sheet.CellRef(r, c), text))
		}
		if len(cells) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", formatMuted(fmt.Sprintf("%4d", r+1)), strings.Join(cells, "  "))
	}

	if len(g.Merges) > 0 {
		refs := make([]string, 0, len(g.Merges))
		for _, m := range g.Merges {
			refs = append(refs, sheet.RangeRef(m))
		}
		fmt.Fprintf(w, "\n%s %s\n", formatHeader("Merges:"), strings.Join(refs, ", "))
	}

	if len(g.ColWidths) > 0 {
		widths := make([]string, 0, len(g.ColWidths))
		for c, width := range g.ColWidths {
			widths = append(widths, fmt.Sprintf("%s=%g", sheet.ColumnName(c), width))
		}
		fmt.Fprintf(w, "%s %s\n", formatHeader("Widths:"), strings.Join(widths, ", "))
	}
}
