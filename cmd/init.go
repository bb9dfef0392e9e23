package cmd

import (
	"fmt"
	"strconv"

	"github.com/encodeous/slotframe/state"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a generator config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := promptGeneratorCfg()
		if err != nil {
			return err
		}
		if err := state.GeneratorConfigValidator(&cfg); err != nil {
			return err
		}
		outPath, _ := cmd.Flags().GetString("output")
		outPath, err = safeSaveFile(outPath, "generator config")
		if err != nil {
			return err
		}
		if err := writeGeneratorConfig(outPath, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s, run `slotframe generate -c %s` to generate schedules.\n", outPath, outPath)
		return nil
	},
	GroupID: "init",
}

func promptGeneratorCfg() (state.GeneratorCfg, error) {
	cfg := state.DefaultGeneratorCfg()
	var err error

	gw, err := promptDefaultStr("Gateway address", cfg.Gateway.String(), func(s string) error {
		_, err := state.ParseAddress(s)
		return err
	})
	if err != nil {
		return cfg, err
	}
	cfg.Gateway = state.MustParseAddress(gw)

	if cfg.NumNodes, err = promptDefaultInt("Nodes", cfg.NumNodes, func(v int) error {
		if v < 0 {
			return fmt.Errorf("must not be negative")
		}
		return nil
	}); err != nil {
		return cfg, err
	}
	if cfg.SlotframeSize, err = promptDefaultInt("Slotframe size", cfg.SlotframeSize, func(v int) error {
		return state.PositiveValidator("slotframe size", v)
	}); err != nil {
		return cfg, err
	}
	if cfg.NumChannels, err = promptDefaultInt("Channels", cfg.NumChannels, func(v int) error {
		return state.PositiveValidator("channels", v)
	}); err != nil {
		return cfg, err
	}
	if cfg.NumMinCells, err = promptDefaultInt("Minimal cells", cfg.NumMinCells, func(v int) error {
		return state.MinCellsValidator(v, cfg.SlotframeSize)
	}); err != nil {
		return cfg, err
	}

	ch, err := promptDefaultStr("Fixed channel (empty for random)", "", func(s string) error {
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		return state.ChannelValidator(v, cfg.NumChannels)
	})
	if err != nil {
		return cfg, err
	}
	if ch != "" {
		v, _ := strconv.Atoi(ch)
		cfg.FixedChannel = &v
	}

	cfg.AutoCell.Enabled = promptYN("Add auto rx cells?", true)
	if cfg.AutoCell.Enabled {
		strategy, err := promptSelect("Auto cell placement", []string{string(state.PlacementOffset), string(state.PlacementPacked)})
		if err != nil {
			return cfg, err
		}
		cfg.AutoCell.Strategy = state.PlacementStrategy(strategy)
		cfg.AutoCell.Gateway = promptYN("Add an auto rx cell to the gateway?", true)
	}

	format, err := promptSelect("Output format", []string{string(state.FormatXML), string(state.FormatYAML)})
	if err != nil {
		return cfg, err
	}
	cfg.Format = state.Format(format)

	if cfg.OutputDir, err = promptDefaultStr("Output directory", cfg.OutputDir, nil); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("output", "o", DefaultConfigPath, "config output file path")
}
