package core

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/encodeous/slotframe/state"
)

// WriteScheduleTable prints one row per link of s.
func WriteScheduleTable(w io.Writer, s *state.Schedule) error {
	fmt.Fprintf(w, "%s (owner %s, slotframe %d, %d links)\n", s.Name(), s.Owner, s.SlotframeSize, len(s.Links))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tCHANNEL\tROLE\tTX\tRX\tSHARED\tAUTO\tNEIGHBOR")
	for _, l := range s.Links {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%t\t%t\t%t\t%t\t%s\n",
			l.SlotOffset, l.ChannelOffset, l.Role, l.Tx, l.Rx, l.Shared, l.Auto, l.Neighbor)
	}
	return tw.Flush()
}

// Utilization is the fraction of slots in s holding at least one link.
func Utilization(s *state.Schedule) float64 {
	if s.SlotframeSize == 0 {
		return 0
	}
	return float64(len(s.UsedSlots())) / float64(s.SlotframeSize)
}
