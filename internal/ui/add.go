package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/allotment"
)

// ErrNoSuffix is returned when --count needs to advance an ID without digits.
var ErrNoSuffix = errors.New("student id has no numeric suffix")

func (a *App) addCmd() *cobra.Command {
	var (
		draft allotment.Draft
		count int
	)

	cmd := &cobra.Command{
		Use:   "add [student-id...]",
		Short: "Add students to a room",
		Long: `Append one record per student ID to the end of the list.

With --count and a single student ID, appends that many records, advancing
the numeric suffix of the ID each time.`,
		Example: `  allot add --room=101 --time=09:30 --course=CS101 --subject=Algorithms 21CS001 21CS002
  allot add --room=101 --time=09:30 --course=CS101 21CS001 --count=30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count > 1 && len(args) != 1 {
				return fmt.Errorf("--count needs exactly one student id, got %d", len(args))
			}

			ids := args
			if count > 1 {
				var err error
				if ids, err = expandIDs(args[0], count); err != nil {
					return err
				}
			}

			records, err := buildRecords(draft, ids)
			if err != nil {
				return err
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			if err := a.store.AppendAll(ctx, records); err != nil {
				return fmt.Errorf("adding records: %w", err)
			}
			total, err := a.store.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("reading records: %w", err)
			}

			first := len(total) - len(records) + 1
			if len(records) == 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "Added #%d: %s [%s] %s\n",
					first, records[0].StudentID, records[0].Room, records[0].Course)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d records (#%d-#%d) to room %s, %s\n",
				len(records), first, len(total), records[0].Room, records[0].Course)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Room, "room", "", "Room number (required)")
	cmd.Flags().StringVar(&draft.Time, "time", "", "Exam time (required)")
	cmd.Flags().StringVar(&draft.Course, "course", "", "Course code (required)")
	cmd.Flags().StringVar(&draft.Subject, "subject", "", "Subject name")
	cmd.Flags().IntVar(&count, "count", 1, "Number of consecutive student IDs to add")

	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

// expandIDs returns n consecutive IDs starting at first.
func expandIDs(first string, n int) ([]string, error) {
	ids := make([]string, 0, n)
	id := first
	for i := 0; i < n; i++ {
		ids = append(ids, id)
		if i == n-1 {
			break
		}
		next, ok := allotment.NextID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoSuffix, first)
		}
		id = next
	}
	return ids, nil
}

func buildRecords(base allotment.Draft, ids []string) ([]allotment.Record, error) {
	records := make([]allotment.Record, 0, len(ids))
	for _, id := range ids {
		d := base
		d.StudentID = id
		rec, err := d.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (a *App) insertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert [position]",
		Short: "Insert a blank seat below a record",
		Long: `Insert a copy of the record at position, with an empty student ID,
directly below it. Later records move down by one.`,
		Example: `  allot insert 12`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			newPos, err := a.store.InsertBelow(context.Background(), pos)
			if err != nil {
				return fmt.Errorf("inserting below #%d: %w", pos+1, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inserted blank seat #%d\n", newPos+1)
			return nil
		},
	}
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [position]",
		Short:   "Delete a record by position",
		Example: `  allot delete 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			if err := a.store.DeleteAt(context.Background(), pos); err != nil {
				return fmt.Errorf("deleting #%d: %w", pos+1, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", pos+1)
			return nil
		},
	}
}

func (a *App) clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			records, err := a.store.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("reading records: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clear.")
				return nil
			}

			if !yes {
				question := formatWarn(fmt.Sprintf("Delete all %d records?", len(records)))
				if !promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := a.store.Clear(ctx); err != nil {
				return fmt.Errorf("clearing records: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d records\n", len(records))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// parsePosition converts a 1-based position argument to a store position.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", arg, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid position %d: %w", n, allotment.ErrPositionOutOfRange)
	}
	return n - 1, nil
}
