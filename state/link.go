package state

import "fmt"

// Role is the purpose a link serves in a schedule.
type Role uint8

const (
	RoleUnknown Role = iota
	// RoleDedicatedTx is a node's unicast uplink to the gateway.
	RoleDedicatedTx
	// RoleDedicatedRx is the gateway side of a RoleDedicatedTx link.
	RoleDedicatedRx
	// RoleAutoRx is a node's autonomous receive cell.
	RoleAutoRx
	// RoleAutoTx is the gateway side of a RoleAutoRx link.
	RoleAutoTx
	// RoleMinimal is a shared broadcast cell present in every schedule.
	RoleMinimal
)

var roleNames = map[Role]string{
	RoleUnknown:     "unknown",
	RoleDedicatedTx: "dedicated-tx",
	RoleDedicatedRx: "dedicated-rx",
	RoleAutoRx:      "auto-rx",
	RoleAutoTx:      "auto-tx",
	RoleMinimal:     "minimal",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return RoleUnknown, fmt.Errorf("%w: unknown link role %q", ErrFormat, s)
}

// Link is one (slot offset, channel offset) cell of a slotframe.
type Link struct {
	Role          Role    `yaml:"role"`
	SlotOffset    int     `yaml:"slot_offset"`
	ChannelOffset int     `yaml:"channel_offset"`
	Tx            bool    `yaml:"tx"`
	Rx            bool    `yaml:"rx"`
	Shared        bool    `yaml:"shared"`
	Auto          bool    `yaml:"auto"`
	Neighbor      Address `yaml:"neighbor"`
}

func DedicatedTxLink(slot, channel int, neighbor Address) Link {
	return Link{Role: RoleDedicatedTx, SlotOffset: slot, ChannelOffset: channel, Tx: true, Neighbor: neighbor}
}

func DedicatedRxLink(slot, channel int, neighbor Address) Link {
	return Link{Role: RoleDedicatedRx, SlotOffset: slot, ChannelOffset: channel, Rx: true, Neighbor: neighbor}
}

// AutoRxLink is addressed to the owning node itself; it only exists to be
// mirrored into an AutoTxLink on the gateway.
func AutoRxLink(slot, channel int, self Address) Link {
	return Link{Role: RoleAutoRx, SlotOffset: slot, ChannelOffset: channel, Rx: true, Auto: true, Neighbor: self}
}

func AutoTxLink(slot, channel int, neighbor Address) Link {
	return Link{Role: RoleAutoTx, SlotOffset: slot, ChannelOffset: channel, Tx: true, Shared: true, Auto: true, Neighbor: neighbor}
}

func MinimalLink(slot int) Link {
	return Link{Role: RoleMinimal, SlotOffset: slot, ChannelOffset: MinimalCellChannel, Tx: true, Rx: true, Shared: true, Neighbor: BroadcastAddress}
}

// ClassifyRole derives the role of a link from its option flags. Used for
// links that were read from disk.
func ClassifyRole(l Link) Role {
	switch {
	case l.Auto && l.Rx && !l.Tx:
		return RoleAutoRx
	case l.Auto && l.Tx && !l.Rx:
		return RoleAutoTx
	case l.Auto:
		return RoleUnknown
	case l.Shared && l.Tx && l.Rx && l.Neighbor == BroadcastAddress:
		return RoleMinimal
	case !l.Shared && l.Tx && !l.Rx:
		return RoleDedicatedTx
	case !l.Shared && l.Rx && !l.Tx:
		return RoleDedicatedRx
	}
	return RoleUnknown
}

// Matches reports whether two links occupy the same cell.
func (l Link) Matches(o Link) bool {
	return l.SlotOffset == o.SlotOffset && l.ChannelOffset == o.ChannelOffset
}

func (l Link) String() string {
	return fmt.Sprintf("%s@%d/%d->%s", l.Role, l.SlotOffset, l.ChannelOffset, l.Neighbor)
}
