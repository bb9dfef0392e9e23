package cmd

import (
	"fmt"

	"github.com/encodeous/slotframe/state"
	"github.com/spf13/cobra"
)

func newAddrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addr <address>",
		Short: "Converts an address between its integer, hex and colon forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.ParseAddress(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "int: %d, hex: %s, str: %s\n", uint64(a), a.Hex(), a.String())
			return nil
		},
		GroupID: "init",
	}
}

func init() {
	rootCmd.AddCommand(newAddrCmd())
}
