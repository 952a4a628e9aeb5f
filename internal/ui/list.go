package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/allotment"
)

func (a *App) listCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records with their positions",
		Long: `List every record in store order. The position in the first column is
the one 'allot insert' and 'allot delete' take.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			records, err := a.store.Snapshot(context.Background())
			if err != nil {
				return fmt.Errorf("listing records: %w", err)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records yet. Add some with 'allot add'.")
				return nil
			}

			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printRecords writes one aligned line per record.
func printRecords(w io.Writer, records []allotment.Record) {
	posW := len(fmt.Sprint(len(records)))
	var roomW, timeW, courseW, idW int
	for _, r := range records {
		roomW = max(roomW, ansi.StringWidth(r.Room))
		timeW = max(timeW, ansi.StringWidth(r.Time))
		courseW = max(courseW, ansi.StringWidth(r.Course))
		idW = max(idW, ansi.StringWidth(r.StudentID), 1)
	}

	for i, r := range records {
		id := r.StudentID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
			formatMuted(fmt.Sprintf("#%-*d", posW, i+1)),
			formatRoom(padRight(r.Room, roomW)),
			padRight(r.Time, timeW),
			formatCourse(padRight(r.Course, courseW)),
			padRight(id, idW),
			formatMuted(r.Subject),
		)
	}
}
