package core

import (
	"fmt"

	"github.com/encodeous/slotframe/state"
)

// ChannelSource draws channel offsets. *rand.Rand from math/rand/v2 satisfies it.
type ChannelSource interface {
	IntN(n int) int
}

// BuildParams holds everything a single schedule depends on besides the node index.
type BuildParams struct {
	Gateway       state.Address
	NumChannels   int
	SlotframeSize int
	NumMinCells   int
	AddAutoCell   bool
	// AutoSlot overrides the auto RX slot. When nil the slot is
	// (index + DefaultAutoOffset) mod SlotframeSize.
	AutoSlot *int
	// FixedChannel pins the channel of the dedicated and auto cells.
	FixedChannel *int
	Channels     ChannelSource
}

// MinimalSlots spaces numMinCells cells evenly across the slotframe.
func MinimalSlots(slotframeSize, numMinCells int) ([]int, error) {
	if err := state.MinCellsValidator(numMinCells, slotframeSize); err != nil {
		return nil, err
	}
	spacing := slotframeSize / numMinCells
	slots := make([]int, numMinCells)
	for k := range numMinCells {
		slots[k] = spacing * k
	}
	return slots, nil
}

func (p *BuildParams) validate(index int) error {
	if err := state.PositiveValidator("slotframe_size", p.SlotframeSize); err != nil {
		return err
	}
	if err := state.PositiveValidator("channels", p.NumChannels); err != nil {
		return err
	}
	if err := state.NodeIndexValidator(index, p.SlotframeSize); err != nil {
		return err
	}
	if p.FixedChannel != nil {
		if err := state.ChannelValidator(*p.FixedChannel, p.NumChannels); err != nil {
			return fmt.Errorf("node %d: %w", index, err)
		}
	} else if p.Channels == nil {
		return fmt.Errorf("%w: node %d: no fixed channel and no channel source", state.ErrConfig, index)
	}
	if p.AutoSlot != nil && (*p.AutoSlot < 0 || *p.AutoSlot >= p.SlotframeSize) {
		return fmt.Errorf("%w: node %d: auto slot %d is outside a slotframe of %d slots", state.ErrConfig, index, *p.AutoSlot, p.SlotframeSize)
	}
	return nil
}

func (p *BuildParams) channel() int {
	if p.FixedChannel != nil {
		return *p.FixedChannel
	}
	return p.Channels.IntN(p.NumChannels)
}

// BuildSchedule assembles the schedule of one node. Index GatewayIndex builds
// the gateway, which has no dedicated uplink.
func BuildSchedule(index int, p BuildParams) (*state.Schedule, error) {
	if err := p.validate(index); err != nil {
		return nil, err
	}
	minSlots, err := MinimalSlots(p.SlotframeSize, p.NumMinCells)
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", index, err)
	}
	self, err := p.Gateway.Add(index + 1)
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", index, err)
	}

	s := state.NewSchedule(self, index, p.SlotframeSize)
	// one draw per node, shared by the dedicated and the auto cell
	ch := p.channel()

	if index != state.GatewayIndex {
		s.Add(state.DedicatedTxLink(index+1, ch, p.Gateway))
	}

	if p.AddAutoCell {
		slot := OffsetSlot(index, state.DefaultAutoOffset, p.SlotframeSize)
		if p.AutoSlot != nil {
			slot = *p.AutoSlot
		}
		s.Add(state.AutoRxLink(slot, ch, self))
	}

	for _, slot := range minSlots {
		s.Add(state.MinimalLink(slot))
	}

	s.Sort()
	return s, nil
}
