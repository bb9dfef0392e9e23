package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/encodeous/slotframe/core"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slotframe",
	Short: "Static TSCH schedule generator",
	Long: `slotframe generates static TSCH slotframe schedules for a star topology.
Every node gets a dedicated uplink and an autonomous receive cell, and the gateway schedule mirrors both so each pair lines up in slot and channel.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return core.NewLogger(level, logPath)
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "init",
		Title: "Configure",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sched",
		Title: "Schedule Commands",
	})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "also write logs to this file")
}
