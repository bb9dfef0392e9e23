package state

import (
	"cmp"
	"fmt"
	"slices"
)

// Schedule is the slotframe of exactly one node.
type Schedule struct {
	Owner         Address `yaml:"owner"`
	NodeIndex     int     `yaml:"node_index"`
	SlotframeSize int     `yaml:"slotframe_size"`
	Links         []Link  `yaml:"links"`
}

// IndexedSchedule pairs a node schedule with the index it was generated for.
type IndexedSchedule struct {
	Index    int
	Schedule *Schedule
}

func NewSchedule(owner Address, nodeIndex, slotframeSize int) *Schedule {
	return &Schedule{
		Owner:         owner,
		NodeIndex:     nodeIndex,
		SlotframeSize: slotframeSize,
		Links:         make([]Link, 0),
	}
}

func (s *Schedule) IsGateway() bool {
	return s.NodeIndex == GatewayIndex
}

// Name is the file stem the schedule is written under.
func (s *Schedule) Name() string {
	if s.IsGateway() {
		return GatewayFileName
	}
	return fmt.Sprintf("%s%d", NodeFilePrefix, s.NodeIndex)
}

func (s *Schedule) Add(l Link) {
	s.Links = append(s.Links, l)
}

// Sort orders links by slot offset, keeping insertion order within a slot.
func (s *Schedule) Sort() {
	slices.SortStableFunc(s.Links, func(a, b Link) int {
		return cmp.Compare(a.SlotOffset, b.SlotOffset)
	})
}

// ByRole returns the links holding the given role, in schedule order.
func (s *Schedule) ByRole(r Role) []Link {
	out := make([]Link, 0)
	for _, l := range s.Links {
		if l.Role == r {
			out = append(out, l)
		}
	}
	return out
}

// AutoRx returns the single autonomous receive link of a node schedule.
func (s *Schedule) AutoRx() (Link, error) {
	links := s.ByRole(RoleAutoRx)
	switch len(links) {
	case 0:
		return Link{}, fmt.Errorf("%w: %s has no auto rx link", ErrNotFound, s.Name())
	case 1:
		return links[0], nil
	}
	return Link{}, fmt.Errorf("%w: %s has %d auto rx links, expected one", ErrConfig, s.Name(), len(links))
}

// Slot returns all links scheduled in one slot offset.
func (s *Schedule) Slot(slot int) []Link {
	out := make([]Link, 0)
	for _, l := range s.Links {
		if l.SlotOffset == slot {
			out = append(out, l)
		}
	}
	return out
}

// UsedSlots returns the distinct slot offsets in ascending order.
func (s *Schedule) UsedSlots() []int {
	slots := make([]int, 0, len(s.Links))
	for _, l := range s.Links {
		slots = append(slots, l.SlotOffset)
	}
	slices.Sort(slots)
	return slices.Compact(slots)
}

// Reclassify assigns roles from option flags to links that have none.
func (s *Schedule) Reclassify() {
	for i := range s.Links {
		if s.Links[i].Role == RoleUnknown {
			s.Links[i].Role = ClassifyRole(s.Links[i])
		}
	}
}
