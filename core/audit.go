package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/encodeous/slotframe/state"
)

type FindingKind string

const (
	// FindingCollision: two non-shared links in one slot of one schedule.
	FindingCollision FindingKind = "collision"
	// FindingChannelConflict: one slot of one schedule uses more than one
	// channel, which a single radio cannot serve.
	FindingChannelConflict FindingKind = "channel-conflict"
	// FindingMissingMirror: a node link has no counterpart on the gateway.
	FindingMissingMirror FindingKind = "missing-mirror"
)

type Finding struct {
	Schedule string
	Slot     int
	Kind     FindingKind
	Detail   string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s slot %d: %s: %s", f.Schedule, f.Slot, f.Kind, f.Detail)
}

type Report struct {
	Findings []Finding
}

func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

func (r *Report) Count(kind FindingKind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Err is nil for a clean report.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		lines = append(lines, f.String())
	}
	return fmt.Errorf("%w: %d schedule findings:\n%s", state.ErrConfig, len(r.Findings), strings.Join(lines, "\n"))
}

// Audit checks every schedule for slot conflicts and the gateway for a
// counterpart of every node link.
func Audit(gateway *state.Schedule, nodes []state.IndexedSchedule) Report {
	var r Report
	for _, n := range nodes {
		r.Findings = append(r.Findings, auditSlots(n.Schedule)...)
	}
	if gateway != nil {
		r.Findings = append(r.Findings, auditSlots(gateway)...)
		r.Findings = append(r.Findings, auditMirror(gateway, nodes)...)
	}
	return r
}

func auditSlots(s *state.Schedule) []Finding {
	var out []Finding
	for _, slot := range s.UsedSlots() {
		links := s.Slot(slot)
		dedicated := slices.DeleteFunc(slices.Clone(links), func(l state.Link) bool {
			return l.Shared
		})
		if len(dedicated) > 1 {
			out = append(out, Finding{
				Schedule: s.Name(),
				Slot:     slot,
				Kind:     FindingCollision,
				Detail:   describe(dedicated),
			})
		}
		channels := make([]int, 0, len(links))
		for _, l := range links {
			channels = append(channels, l.ChannelOffset)
		}
		slices.Sort(channels)
		if len(slices.Compact(channels)) > 1 {
			out = append(out, Finding{
				Schedule: s.Name(),
				Slot:     slot,
				Kind:     FindingChannelConflict,
				Detail:   describe(links),
			})
		}
	}
	return out
}

func auditMirror(gateway *state.Schedule, nodes []state.IndexedSchedule) []Finding {
	var out []Finding
	pairs := []struct{ node, gw state.Role }{
		{state.RoleDedicatedTx, state.RoleDedicatedRx},
		{state.RoleAutoRx, state.RoleAutoTx},
	}
	for _, n := range nodes {
		for _, p := range pairs {
			counterparts := gateway.ByRole(p.gw)
			for _, l := range n.Schedule.ByRole(p.node) {
				if slices.ContainsFunc(counterparts, func(g state.Link) bool {
					return g.Matches(l) && g.Neighbor == n.Schedule.Owner
				}) {
					continue
				}
				out = append(out, Finding{
					Schedule: n.Schedule.Name(),
					Slot:     l.SlotOffset,
					Kind:     FindingMissingMirror,
					Detail:   fmt.Sprintf("%s has no %s on %s", l, p.gw, gateway.Name()),
				})
			}
		}
	}
	return out
}

func describe(links []state.Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ", ")
}
