package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/allotment"
)

func (a *App) nextIDCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "next-id [student-id]",
		Short: "Print the next (or previous) student ID",
		Long: `Step the trailing number of a student ID by one, keeping its zero
padding. IDs without a trailing number are printed unchanged.`,
		Example: `  allot next-id 21CS009        # 21CS010
  allot next-id 21CS010 --down # 21CS009`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step := allotment.NextID
			if down {
				step = allotment.PrevID
			}
			id, _ := step(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Step down instead of up")
	return cmd
}
