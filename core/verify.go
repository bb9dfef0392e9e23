package core

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/encodeous/slotframe/state"
)

// LoadTopology reads a directory written by Generate back into memory.
// Files that do not follow the sink/host_<i> naming are ignored.
func LoadTopology(dir string, gateway state.Address) (*state.Schedule, []state.IndexedSchedule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %w", state.ErrIO, dir, err)
	}
	var gw *state.Schedule
	nodes := make([]state.IndexedSchedule, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		idx, _, err := state.ParseFileName(e.Name())
		if err != nil {
			continue
		}
		s, err := state.ReadSchedule(filepath.Join(dir, e.Name()), gateway)
		if err != nil {
			return nil, nil, err
		}
		if idx == state.GatewayIndex {
			if gw != nil {
				return nil, nil, fmt.Errorf("%w: %s holds more than one gateway schedule", state.ErrConfig, dir)
			}
			gw = s
			continue
		}
		nodes = append(nodes, state.IndexedSchedule{Index: idx, Schedule: s})
	}
	if gw == nil {
		return nil, nil, fmt.Errorf("%w: no %s schedule in %s", state.ErrNotFound, state.GatewayFileName, dir)
	}
	slices.SortFunc(nodes, func(a, b state.IndexedSchedule) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return gw, nodes, nil
}

// VerifyDir loads a generated directory and audits it.
func VerifyDir(dir string, gateway state.Address) (Report, error) {
	gw, nodes, err := LoadTopology(dir, gateway)
	if err != nil {
		return Report{}, err
	}
	return Audit(gw, nodes), nil
}
