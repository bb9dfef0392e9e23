package cmd

import (
	"fmt"

	"github.com/encodeous/slotframe/core"
	"github.com/encodeous/slotframe/state"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Checks a generated schedule directory for collisions and unmirrored links",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := state.DefaultOutputDir
			if len(args) == 1 {
				dir = args[0]
			}
			gwStr, _ := cmd.Flags().GetString("gateway")
			gw, err := state.ParseAddress(gwStr)
			if err != nil {
				return err
			}
			report, err := core.VerifyDir(dir, gw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range report.Findings {
				fmt.Fprintln(out, f.String())
			}
			if err := report.Err(); err != nil {
				return fmt.Errorf("%s: %d findings", dir, len(report.Findings))
			}
			fmt.Fprintf(out, "%s: schedules are consistent\n", dir)
			return nil
		},
		GroupID: "sched",
	}
	cmd.Flags().String("gateway", state.DefaultGateway.String(), "gateway address the schedules were generated for")
	return cmd
}

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}
