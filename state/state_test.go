package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleNodeSchedule() *Schedule {
	self := MustParseAddress("0A:AA:00:00:00:02")
	s := NewSchedule(self, 0, 101)
	s.Add(MinimalLink(0))
	s.Add(AutoRxLink(37, 15, self))
	s.Add(DedicatedTxLink(1, 15, DefaultGateway))
	return s
}

func TestSchedule_Sort(t *testing.T) {
	s := sampleNodeSchedule()
	s.Add(MinimalLink(1))
	s.Sort()
	slots := make([]int, 0)
	for _, l := range s.Links {
		slots = append(slots, l.SlotOffset)
	}
	assert.Equal(t, []int{0, 1, 1, 37}, slots)
	// stable within a slot
	assert.Equal(t, RoleDedicatedTx, s.Links[1].Role)
	assert.Equal(t, RoleMinimal, s.Links[2].Role)
}

func TestSchedule_ByRole(t *testing.T) {
	s := sampleNodeSchedule()
	assert.Len(t, s.ByRole(RoleMinimal), 1)
	assert.Len(t, s.ByRole(RoleDedicatedTx), 1)
	assert.Empty(t, s.ByRole(RoleAutoTx))
}

func TestSchedule_AutoRx(t *testing.T) {
	s := sampleNodeSchedule()
	l, err := s.AutoRx()
	assert.NoError(t, err)
	assert.Equal(t, 37, l.SlotOffset)

	empty := NewSchedule(DefaultGateway, 4, 101)
	_, err = empty.AutoRx()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "host_4")

	s.Add(AutoRxLink(38, 15, s.Owner))
	_, err = s.AutoRx()
	assert.ErrorIs(t, err, ErrConfig)
}

func TestSchedule_Name(t *testing.T) {
	assert.Equal(t, "sink", NewSchedule(DefaultGateway, GatewayIndex, 101).Name())
	assert.Equal(t, "host_12", NewSchedule(DefaultGateway, 12, 101).Name())
	assert.True(t, NewSchedule(DefaultGateway, GatewayIndex, 101).IsGateway())
}

func TestSchedule_UsedSlots(t *testing.T) {
	s := sampleNodeSchedule()
	s.Add(DedicatedTxLink(37, 3, DefaultGateway))
	assert.Equal(t, []int{0, 1, 37}, s.UsedSlots())
	assert.Len(t, s.Slot(37), 2)
}

func TestClassifyRole(t *testing.T) {
	self := MustParseAddress("0A:AA:00:00:00:02")
	for _, l := range []Link{
		DedicatedTxLink(1, 2, DefaultGateway),
		DedicatedRxLink(1, 2, self),
		AutoRxLink(3, 4, self),
		AutoTxLink(3, 4, self),
		MinimalLink(0),
	} {
		want := l.Role
		l.Role = RoleUnknown
		assert.Equal(t, want, ClassifyRole(l), want.String())
	}
	assert.Equal(t, RoleUnknown, ClassifyRole(Link{Tx: true, Rx: true}))
}

func TestLink_Flags(t *testing.T) {
	m := MinimalLink(20)
	assert.True(t, m.Tx && m.Rx && m.Shared)
	assert.False(t, m.Auto)
	assert.Equal(t, BroadcastAddress, m.Neighbor)
	assert.Equal(t, MinimalCellChannel, m.ChannelOffset)

	a := AutoRxLink(37, 15, DefaultGateway)
	assert.True(t, a.Rx && a.Auto)
	assert.False(t, a.Tx || a.Shared)

	g := AutoTxLink(37, 15, DefaultGateway)
	assert.True(t, g.Tx && g.Auto && g.Shared)
	assert.False(t, g.Rx)
	assert.True(t, a.Matches(g))
}

func TestRole_Text(t *testing.T) {
	for r := range roleNames {
		text, err := r.MarshalText()
		assert.NoError(t, err)
		var back Role
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, r, back)
	}
	var r Role
	assert.ErrorIs(t, r.UnmarshalText([]byte("bogus")), ErrFormat)
}
