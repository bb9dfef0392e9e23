package core

import (
	"fmt"

	"github.com/encodeous/slotframe/state"
)

// OffsetSlot is the auto RX slot of the offset strategy. Collisions with
// dedicated or minimal cells are possible once index+offset wraps around;
// Audit reports them.
func OffsetSlot(index, offset, slotframeSize int) int {
	return ((index+offset)%slotframeSize + slotframeSize) % slotframeSize
}

// AutoSlots assigns an auto RX slot to every node index in [0, numNodes).
func AutoSlots(cfg *state.GeneratorCfg) ([]int, error) {
	slots := make([]int, cfg.NumNodes)
	switch cfg.AutoCell.Strategy {
	case state.PlacementOffset:
		for i := range slots {
			slots[i] = OffsetSlot(i, cfg.AutoCell.Offset, cfg.SlotframeSize)
		}
		return slots, nil
	case state.PlacementPacked:
		return packedSlots(cfg, cfg.NumNodes)
	}
	return nil, fmt.Errorf("%w: unknown auto_cell.strategy %q", state.ErrConfig, cfg.AutoCell.Strategy)
}

// GatewayAutoSlot is the slot of the gateway's own auto RX cell. The offset
// strategy treats the gateway as index -1; packed gives it the free slot
// after the last node's.
func GatewayAutoSlot(cfg *state.GeneratorCfg) (int, error) {
	switch cfg.AutoCell.Strategy {
	case state.PlacementOffset:
		return OffsetSlot(state.GatewayIndex, cfg.AutoCell.Offset, cfg.SlotframeSize), nil
	case state.PlacementPacked:
		slots, err := packedSlots(cfg, cfg.NumNodes+1)
		if err != nil {
			return 0, err
		}
		return slots[cfg.NumNodes], nil
	}
	return 0, fmt.Errorf("%w: unknown auto_cell.strategy %q", state.ErrConfig, cfg.AutoCell.Strategy)
}

// packedSlots hands out count slots: node i gets the i-th slot that is neither a minimal cell nor
// any node's dedicated slot (1..numNodes). The result is pairwise distinct and
// disjoint from every dedicated and minimal slot, on nodes and gateway alike.
func packedSlots(cfg *state.GeneratorCfg, count int) ([]int, error) {
	minSlots, err := MinimalSlots(cfg.SlotframeSize, cfg.NumMinCells)
	if err != nil {
		return nil, err
	}
	used := make([]bool, cfg.SlotframeSize)
	for _, s := range minSlots {
		used[s] = true
	}
	for i := range cfg.NumNodes {
		if i+1 < cfg.SlotframeSize {
			used[i+1] = true
		}
	}

	slots := make([]int, 0, count)
	for slot, taken := range used {
		if len(slots) == count {
			break
		}
		if !taken {
			slots = append(slots, slot)
		}
	}
	if len(slots) < count {
		return nil, fmt.Errorf("%w: packed placement needs %d free slots, slotframe of %d has %d", state.ErrConfig, count, cfg.SlotframeSize, len(slots))
	}
	return slots, nil
}
