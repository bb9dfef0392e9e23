package core

import (
	"testing"

	"github.com/encodeous/slotframe/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNodes(t *testing.T, n int, p BuildParams) []state.IndexedSchedule {
	t.Helper()
	nodes := make([]state.IndexedSchedule, 0, n)
	for i := range n {
		s, err := BuildSchedule(i, p)
		require.NoError(t, err)
		nodes = append(nodes, state.IndexedSchedule{Index: i, Schedule: s})
	}
	return nodes
}

func gatewayFor(t *testing.T, p BuildParams) *state.Schedule {
	t.Helper()
	p.AddAutoCell = false
	gw, err := BuildSchedule(state.GatewayIndex, p)
	require.NoError(t, err)
	return gw
}

func TestMirrorIntoGateway_Completeness(t *testing.T) {
	p := fixedParams(1)
	nodes := buildNodes(t, 10, p)
	gw := gatewayFor(t, p)
	require.NoError(t, MirrorIntoGateway(gw, nodes))

	for _, n := range nodes {
		tx := n.Schedule.ByRole(state.RoleDedicatedTx)[0]
		arx, err := n.Schedule.AutoRx()
		require.NoError(t, err)

		rx := 0
		for _, l := range gw.ByRole(state.RoleDedicatedRx) {
			if l.Matches(tx) && l.Neighbor == n.Schedule.Owner {
				rx++
			}
		}
		assert.Equal(t, 1, rx, "node %d dedicated rx", n.Index)

		atx := 0
		for _, l := range gw.ByRole(state.RoleAutoTx) {
			if l.Matches(arx) && l.Neighbor == n.Schedule.Owner {
				atx++
				assert.True(t, l.Shared)
			}
		}
		assert.Equal(t, 1, atx, "node %d auto tx", n.Index)
	}
	assert.Len(t, gw.Links, 1+2*10)
}

func TestMirrorIntoGateway_Sorted(t *testing.T) {
	p := fixedParams(5)
	nodes := buildNodes(t, 30, p)
	gw := gatewayFor(t, p)
	require.NoError(t, MirrorIntoGateway(gw, nodes))
	for i := 1; i < len(gw.Links); i++ {
		assert.LessOrEqual(t, gw.Links[i-1].SlotOffset, gw.Links[i].SlotOffset)
	}
}

func TestMirrorIntoGateway_MissingAutoCell(t *testing.T) {
	p := fixedParams(1)
	p.AddAutoCell = false
	nodes := buildNodes(t, 3, p)
	gw := gatewayFor(t, p)
	err := MirrorIntoGateway(gw, nodes)
	assert.ErrorIs(t, err, state.ErrNotFound)
	assert.ErrorContains(t, err, "node 0")
}

func TestMirrorIntoGateway_MultipleDedicated(t *testing.T) {
	p := fixedParams(1)
	nodes := buildNodes(t, 1, p)
	nodes[0].Schedule.Add(state.DedicatedTxLink(60, 3, state.DefaultGateway))
	gw := gatewayFor(t, p)
	require.NoError(t, MirrorIntoGateway(gw, nodes))
	assert.Len(t, gw.ByRole(state.RoleDedicatedRx), 2)
	assert.Len(t, gw.Slot(60), 1)
}

func TestMirrorIntoGateway_NoDedup(t *testing.T) {
	p := fixedParams(1)
	nodes := buildNodes(t, 2, p)
	// force node 1 onto node 0's dedicated slot with another channel
	nodes[1].Schedule.Links = []state.Link{
		state.DedicatedTxLink(1, 4, state.DefaultGateway),
		state.AutoRxLink(40, 4, nodes[1].Schedule.Owner),
	}
	gw := gatewayFor(t, p)
	require.NoError(t, MirrorIntoGateway(gw, nodes))
	assert.Len(t, gw.Slot(1), 2)

	r := Audit(gw, nodes)
	assert.Equal(t, 1, r.Count(FindingCollision))
	assert.Equal(t, 1, r.Count(FindingChannelConflict))
}
