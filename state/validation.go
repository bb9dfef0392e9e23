package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func PositiveValidator(field string, v int) error {
	if v < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrConfig, field, v)
	}
	return nil
}

func ChannelValidator(channel, numChannels int) error {
	if channel < 0 || channel >= numChannels {
		return fmt.Errorf("%w: channel offset %d is outside [0, %d)", ErrConfig, channel, numChannels)
	}
	return nil
}

// MinCellsValidator checks that numMinCells cells fit into distinct slots.
func MinCellsValidator(numMinCells, slotframeSize int) error {
	if err := PositiveValidator("min_cells", numMinCells); err != nil {
		return err
	}
	if numMinCells > slotframeSize {
		return fmt.Errorf("%w: %d minimal cells do not fit into a slotframe of %d slots", ErrConfig, numMinCells, slotframeSize)
	}
	return nil
}

// NodeIndexValidator checks that a node's dedicated cell lies inside the slotframe.
func NodeIndexValidator(index, slotframeSize int) error {
	if index < GatewayIndex {
		return fmt.Errorf("%w: node index %d is below %d", ErrConfig, index, GatewayIndex)
	}
	if index+1 >= slotframeSize {
		return fmt.Errorf("%w: node %d: dedicated slot %d is outside a slotframe of %d slots", ErrConfig, index, index+1, slotframeSize)
	}
	return nil
}

func GeneratorConfigValidator(cfg *GeneratorCfg) error {
	if cfg.NumNodes < 0 {
		return fmt.Errorf("%w: nodes must not be negative, got %d", ErrConfig, cfg.NumNodes)
	}
	if err := PositiveValidator("slotframe_size", cfg.SlotframeSize); err != nil {
		return err
	}
	if err := PositiveValidator("channels", cfg.NumChannels); err != nil {
		return err
	}
	if err := MinCellsValidator(cfg.NumMinCells, cfg.SlotframeSize); err != nil {
		return err
	}
	if cfg.FixedChannel != nil {
		if err := ChannelValidator(*cfg.FixedChannel, cfg.NumChannels); err != nil {
			return err
		}
	}
	if cfg.NumNodes > 0 {
		if err := NodeIndexValidator(cfg.NumNodes-1, cfg.SlotframeSize); err != nil {
			return err
		}
		if _, err := cfg.NodeAddress(cfg.NumNodes - 1); err != nil {
			return err
		}
	}
	if !cfg.AutoCell.Enabled && cfg.NumNodes > 0 {
		return fmt.Errorf("%w: auto_cell.enabled is false but %d nodes need an auto rx cell for the gateway to mirror", ErrConfig, cfg.NumNodes)
	}
	switch cfg.AutoCell.Strategy {
	case PlacementOffset:
		if cfg.AutoCell.Offset < 0 {
			return fmt.Errorf("%w: auto_cell.offset must not be negative, got %d", ErrConfig, cfg.AutoCell.Offset)
		}
	case PlacementPacked:
	default:
		return fmt.Errorf("%w: unknown auto_cell.strategy %q", ErrConfig, cfg.AutoCell.Strategy)
	}
	if _, err := ParseFormat(string(cfg.Format)); err != nil {
		return err
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("%w: output directory must be set", ErrConfig)
	}
	return nil
}
