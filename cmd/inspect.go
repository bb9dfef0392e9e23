package cmd

import (
	"fmt"

	"github.com/encodeous/slotframe/core"
	"github.com/encodeous/slotframe/state"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect <file>",
		Aliases: []string{"i"},
		Short:   "Prints the links of a generated schedule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gwStr, _ := cmd.Flags().GetString("gateway")
			gw, err := state.ParseAddress(gwStr)
			if err != nil {
				return err
			}
			s, err := state.ReadSchedule(args[0], gw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := core.WriteScheduleTable(out, s); err != nil {
				return err
			}
			fmt.Fprintf(out, "utilization: %.1f%%\n", core.Utilization(s)*100)
			return nil
		},
		GroupID: "sched",
	}
	cmd.Flags().String("gateway", state.DefaultGateway.String(), "gateway address the schedule was generated for")
	return cmd
}

func init() {
	rootCmd.AddCommand(newInspectCmd())
}
