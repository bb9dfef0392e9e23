package state

import "fmt"

// Format is the on-disk representation of a schedule.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// Ext is the file extension written for the format.
func (f Format) Ext() string {
	return string(f)
}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXML:
		return FormatXML, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unknown format %q, expected xml or yaml", ErrConfig, s)
}

// PlacementStrategy selects how auto RX cells are assigned to slots.
type PlacementStrategy string

const (
	// PlacementOffset places node i at (i + offset) mod slotframe size.
	PlacementOffset PlacementStrategy = "offset"
	// PlacementPacked hands out free slots that no dedicated or minimal cell uses.
	PlacementPacked PlacementStrategy = "packed"
)

type AutoCellCfg struct {
	Enabled  bool              `yaml:"enabled"`
	Strategy PlacementStrategy `yaml:"strategy,omitempty"`
	Offset   int               `yaml:"offset"` // only used by the offset strategy
	// Gateway adds a self-addressed auto RX cell to the gateway schedule.
	Gateway bool `yaml:"gateway"`
}

// GeneratorCfg describes one generation run for a star topology.
type GeneratorCfg struct {
	Gateway       Address     `yaml:"gateway"`        // nodes are numbered upwards from the gateway address
	NumNodes      int         `yaml:"nodes"`          // leaf nodes, excluding the gateway
	NumChannels   int         `yaml:"channels"`       // channel offsets are drawn from [0, channels)
	SlotframeSize int         `yaml:"slotframe_size"` // slots per slotframe
	NumMinCells   int         `yaml:"min_cells"`      // shared broadcast cells per schedule
	FixedChannel  *int        `yaml:"channel,omitempty"`
	AutoCell      AutoCellCfg `yaml:"auto_cell"`
	Seed          *uint64     `yaml:"seed,omitempty"` // seeds the channel draw when no fixed channel is set
	OutputDir     string      `yaml:"output"`
	Format        Format      `yaml:"format"`
	Strict        bool        `yaml:"strict,omitempty"` // treat audit findings as errors
}

func DefaultGeneratorCfg() GeneratorCfg {
	return GeneratorCfg{
		Gateway:       DefaultGateway,
		NumNodes:      DefaultNumNodes,
		NumChannels:   DefaultNumChannels,
		SlotframeSize: DefaultSlotframeSize,
		NumMinCells:   DefaultNumMinCells,
		AutoCell: AutoCellCfg{
			Enabled:  true,
			Strategy: PlacementOffset,
			Offset:   DefaultAutoOffset,
			Gateway:  true,
		},
		OutputDir: DefaultOutputDir,
		Format:    FormatXML,
	}
}

// NodeAddress is the address of node index under this configuration.
func (c *GeneratorCfg) NodeAddress(index int) (Address, error) {
	return c.Gateway.Add(index + 1)
}

// ExpandGeneratorConfig fills in zero values a partial config file leaves out.
// Numeric fields are left alone since zero can be meaningful; their defaults
// come from DefaultGeneratorCfg, which config files are decoded over.
func ExpandGeneratorConfig(c *GeneratorCfg) {
	if c.Format == "" {
		c.Format = FormatXML
	}
	if c.AutoCell.Strategy == "" {
		c.AutoCell.Strategy = PlacementOffset
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}
