package state

const (
	// AddressBits is the width of an IEEE 802.15.4 extended address.
	AddressBits = 48
	// MaxAddress is the largest representable address.
	MaxAddress = Address(1<<AddressBits - 1)
	// BroadcastAddress is the neighbor of every minimal cell.
	BroadcastAddress = MaxAddress

	// GatewayIndex is the node index used when building the gateway schedule.
	GatewayIndex = -1

	// VirtualLinkID is written into every link; virtual links are not scheduled.
	VirtualLinkID = 0
	// MinimalCellChannel is the channel offset of every minimal cell.
	MinimalCellChannel = 0
)

var (
	DefaultGateway       = Address(0x0AAA00000001)
	DefaultNumChannels   = 16
	DefaultSlotframeSize = 101
	DefaultNumMinCells   = 5
	DefaultNumNodes      = 100

	// DefaultAutoOffset shifts the auto RX cell away from the dedicated cell
	// of small node indices. It does not guarantee collision freedom.
	DefaultAutoOffset = 37

	DefaultOutputDir = "./schedules"

	GatewayFileName = "sink"
	NodeFilePrefix  = "host_"
)
