package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/layout"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

const (
	seqColW   = 5  // "Sl No"
	minIDColW = 10 // "Student ID"
	blockSep  = " │ "
)

func (a *App) showCmd() *cobra.Command {
	var copyGrid bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the room allotment board",
		Long: `Display every room with its courses laid out in blocks of ten students,
the same grouping the exported sheet uses.

Use --copy to put the sheet on the clipboard as tab-separated text, ready
to paste into a spreadsheet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			records, err := a.store.Snapshot(context.Background())
			if err != nil {
				return fmt.Errorf("fetching records: %w", err)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records yet. Add some with 'allot add'.")
				return nil
			}

			printBoard(cmd.OutOrStdout(), layout.Group(records), termWidth())

			if copyGrid {
				g := layout.Compile(records)
				if err := clipboardWrite(g.TSV()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nCopied %d rows to the clipboard\n", g.NumRows())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyGrid, "copy", false, "Copy the sheet to the clipboard as TSV")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printBoard writes one section per room. Course blocks that do not fit in
// width wrap onto further lines.
func printBoard(w io.Writer, rooms []layout.RoomGroup, width int) {
	for i, room := range rooms {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s   %s\n",
			formatRoom("Room No: "+room.Room),
			formatStats(fmt.Sprintf("Total Students: %d", room.Count())),
		)
		for _, course := range room.Courses {
			printCourse(w, course, width)
		}
	}
}

func printCourse(w io.Writer, course layout.CourseGroup, width int) {
	label := layout.CourseLabel(course.Course, course.Time)
	if course.Subject != "" {
		fmt.Fprintf(w, "\n  %s  %s\n", formatCourse(label), formatMuted(course.Subject))
	} else {
		fmt.Fprintf(w, "\n  %s\n", formatCourse(label))
	}

	idW := minIDColW
	for _, s := range course.Seats {
		idW = max(idW, ansi.StringWidth(s.StudentID))
	}
	blockW := seqColW + 2 + idW

	plan := layout.Paginate(len(course.Seats))
	sepW := ansi.StringWidth(blockSep)
	perLine := max(1, (width-4+sepW)/(blockW+sepW))

	for first := 0; first < plan.RenderedBlocks(); first += perLine {
		last := min(first+perLine, plan.RenderedBlocks())

		cells := make([]string, 0, last-first)
		for b := first; b < last; b++ {
			cells = append(cells, fmt.Sprintf("%*s  %s", seqColW, "Sl No", padRight("Student ID", idW)))
		}
		fmt.Fprintf(w, "    %s\n", formatHeader(strings.Join(cells, blockSep)))

		for row := 0; row < layout.RowsPerBlock; row++ {
			cells = cells[:0]
			filled := false
			for b := first; b < last; b++ {
				idx := b*layout.RowsPerBlock + row
				if idx >= len(course.Seats) {
					cells = append(cells, strings.Repeat(" ", blockW))
					continue
				}
				filled = true
				id := course.Seats[idx].StudentID
				if id == "" {
					id = formatMuted(padRight("-", idW))
				} else {
					id = padRight(id, idW)
				}
				cells = append(cells, fmt.Sprintf("%*d  %s", seqColW, plan.Slot(idx).Seq, id))
			}
			if !filled {
				break
			}
			fmt.Fprintf(w, "    %s\n", strings.TrimRight(strings.Join(cells, blockSep), " "))
		}
	}

	fmt.Fprintf(w, "    %s\n", formatStats(layout.CountLabel(course.Count())))
}

// padRight pads s with spaces to w terminal cells.
func padRight(s string, w int) string {
	if n := w - ansi.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
