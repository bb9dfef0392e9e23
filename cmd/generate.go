package cmd

import (
	"fmt"

	"github.com/encodeous/slotframe/core"
	"github.com/encodeous/slotframe/state"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate node and gateway schedules",
		Long: `Generates host_<i> schedules for every node and a sink schedule for the gateway.
Values from the config file are overridden by any flag given on the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := readGeneratorConfig(cfgPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if err := applyGenerateFlags(cmd, &cfg); err != nil {
				return err
			}

			log, closer, err := newLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			res, err := core.Generate(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			for _, f := range res.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "  generated %s\n", f)
			}
			return nil
		},
		GroupID: "sched",
	}

	def := state.DefaultGeneratorCfg()
	f := cmd.Flags()
	f.StringP("config", "c", DefaultConfigPath, "generator config file")
	f.IntP("nodes", "n", def.NumNodes, "number of nodes around the gateway")
	f.IntP("slotframe-size", "s", def.SlotframeSize, "slots per slotframe")
	f.Int("channels", def.NumChannels, "number of channel offsets")
	f.IntP("min-cells", "m", def.NumMinCells, "shared minimal cells per schedule")
	f.Int("channel", 0, "fixed channel offset for dedicated and auto cells (random when unset)")
	f.String("gateway", def.Gateway.String(), "gateway address")
	f.Bool("no-auto", false, "do not add auto rx cells (only valid with --nodes 0)")
	f.Bool("no-gateway-auto", false, "do not add the gateway's own auto rx cell")
	f.String("auto-strategy", string(def.AutoCell.Strategy), "auto cell placement: offset or packed")
	f.Int("auto-offset", def.AutoCell.Offset, "slot offset added to the node index by the offset strategy")
	f.Uint64("seed", 0, "seed for random channel offsets")
	f.StringP("format", "f", string(def.Format), "output format: xml or yaml")
	f.StringP("output", "o", def.OutputDir, "output directory")
	f.Bool("strict", false, "fail when the audit reports any finding")
	return cmd
}

func applyGenerateFlags(cmd *cobra.Command, cfg *state.GeneratorCfg) error {
	f := cmd.Flags()
	if f.Changed("nodes") {
		cfg.NumNodes, _ = f.GetInt("nodes")
	}
	if f.Changed("slotframe-size") {
		cfg.SlotframeSize, _ = f.GetInt("slotframe-size")
	}
	if f.Changed("channels") {
		cfg.NumChannels, _ = f.GetInt("channels")
	}
	if f.Changed("min-cells") {
		cfg.NumMinCells, _ = f.GetInt("min-cells")
	}
	if f.Changed("channel") {
		ch, _ := f.GetInt("channel")
		cfg.FixedChannel = &ch
	}
	if f.Changed("gateway") {
		s, _ := f.GetString("gateway")
		gw, err := state.ParseAddress(s)
		if err != nil {
			return err
		}
		cfg.Gateway = gw
	}
	if f.Changed("no-auto") {
		noAuto, _ := f.GetBool("no-auto")
		cfg.AutoCell.Enabled = !noAuto
	}
	if f.Changed("no-gateway-auto") {
		noAuto, _ := f.GetBool("no-gateway-auto")
		cfg.AutoCell.Gateway = !noAuto
	}
	if f.Changed("auto-strategy") {
		s, _ := f.GetString("auto-strategy")
		cfg.AutoCell.Strategy = state.PlacementStrategy(s)
	}
	if f.Changed("auto-offset") {
		cfg.AutoCell.Offset, _ = f.GetInt("auto-offset")
	}
	if f.Changed("seed") {
		seed, _ := f.GetUint64("seed")
		cfg.Seed = &seed
	}
	if f.Changed("format") {
		s, _ := f.GetString("format")
		format, err := state.ParseFormat(s)
		if err != nil {
			return err
		}
		cfg.Format = format
	}
	if f.Changed("output") {
		cfg.OutputDir, _ = f.GetString("output")
	}
	if f.Changed("strict") {
		cfg.Strict, _ = f.GetBool("strict")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}
