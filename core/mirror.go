package core

import (
	"fmt"

	"github.com/encodeous/slotframe/state"
)

// MirrorIntoGateway adds the gateway half of every node's links: an auto TX
// cell per node auto RX cell and a dedicated RX cell per dedicated TX cell.
// Nodes are processed in the given order and nothing is deduplicated, so two
// nodes sharing a slot leave a conflict on the gateway for Audit to report.
func MirrorIntoGateway(gateway *state.Schedule, nodes []state.IndexedSchedule) error {
	for _, n := range nodes {
		arx, err := n.Schedule.AutoRx()
		if err != nil {
			return fmt.Errorf("mirroring node %d: %w", n.Index, err)
		}
		gateway.Add(state.AutoTxLink(arx.SlotOffset, arx.ChannelOffset, n.Schedule.Owner))

		for _, tx := range n.Schedule.ByRole(state.RoleDedicatedTx) {
			gateway.Add(state.DedicatedRxLink(tx.SlotOffset, tx.ChannelOffset, n.Schedule.Owner))
		}
	}
	gateway.Sort()
	return nil
}
