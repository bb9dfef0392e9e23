package core

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"

	"github.com/encodeous/slotframe/state"
	"github.com/google/uuid"
)

// Result is one generated star topology.
type Result struct {
	RunID   uuid.UUID
	Gateway *state.Schedule
	Nodes   []state.IndexedSchedule
	Report  Report
	Files   []string
}

// NewChannelSource returns a seeded source, or a randomly seeded one when seed is nil.
func NewChannelSource(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func buildParams(cfg *state.GeneratorCfg, channels ChannelSource) BuildParams {
	return BuildParams{
		Gateway:       cfg.Gateway,
		NumChannels:   cfg.NumChannels,
		SlotframeSize: cfg.SlotframeSize,
		NumMinCells:   cfg.NumMinCells,
		FixedChannel:  cfg.FixedChannel,
		Channels:      channels,
	}
}

// BuildTopology builds all node schedules, then the gateway, then mirrors
// the nodes into the gateway and audits the result. Nothing is written.
func BuildTopology(cfg *state.GeneratorCfg, channels ChannelSource) (*Result, error) {
	if err := state.GeneratorConfigValidator(cfg); err != nil {
		return nil, err
	}
	var autoSlots []int
	if cfg.AutoCell.Enabled {
		var err error
		autoSlots, err = AutoSlots(cfg)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		RunID: uuid.New(),
		Nodes: make([]state.IndexedSchedule, 0, cfg.NumNodes),
	}
	for i := range cfg.NumNodes {
		p := buildParams(cfg, channels)
		if cfg.AutoCell.Enabled {
			p.AddAutoCell = true
			p.AutoSlot = &autoSlots[i]
		}
		s, err := BuildSchedule(i, p)
		if err != nil {
			return nil, err
		}
		res.Nodes = append(res.Nodes, state.IndexedSchedule{Index: i, Schedule: s})
	}

	gp := buildParams(cfg, channels)
	if cfg.AutoCell.Enabled && cfg.AutoCell.Gateway {
		slot, err := GatewayAutoSlot(cfg)
		if err != nil {
			return nil, fmt.Errorf("gateway: %w", err)
		}
		gp.AddAutoCell = true
		gp.AutoSlot = &slot
	}
	gw, err := BuildSchedule(state.GatewayIndex, gp)
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := MirrorIntoGateway(gw, res.Nodes); err != nil {
		return nil, err
	}
	res.Gateway = gw
	res.Report = Audit(gw, res.Nodes)
	return res, nil
}

// Generate runs a full generation and writes host_<i> and sink files into
// cfg.OutputDir.
func Generate(ctx context.Context, cfg state.GeneratorCfg, log *slog.Logger) (*Result, error) {
	state.ExpandGeneratorConfig(&cfg)
	res, err := BuildTopology(&cfg, NewChannelSource(cfg.Seed))
	if err != nil {
		return nil, err
	}
	log = log.With("run", res.RunID.String())
	log.Info("built schedules",
		"nodes", len(res.Nodes),
		"slotframe_size", cfg.SlotframeSize,
		"min_cells", cfg.NumMinCells,
		"strategy", cfg.AutoCell.Strategy,
		"gateway", cfg.Gateway)

	for _, f := range res.Report.Findings {
		log.Warn("schedule finding", "schedule", f.Schedule, "slot", f.Slot, "kind", f.Kind, "detail", f.Detail)
	}
	if cfg.Strict {
		if err := res.Report.Err(); err != nil {
			return nil, err
		}
	}

	schedules := make([]*state.Schedule, 0, len(res.Nodes)+1)
	for _, n := range res.Nodes {
		schedules = append(schedules, n.Schedule)
	}
	schedules = append(schedules, res.Gateway)

	for _, s := range schedules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(cfg.OutputDir, state.FileName(s, cfg.Format))
		if err := state.WriteSchedule(s, path, cfg.Format); err != nil {
			return nil, err
		}
		log.Debug("wrote schedule", "path", path, "links", len(s.Links))
		res.Files = append(res.Files, path)
	}
	log.Info("generation complete", "dir", cfg.OutputDir, "files", len(res.Files), "findings", len(res.Report.Findings))
	return res, nil
}
