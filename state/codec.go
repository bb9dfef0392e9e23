package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// FileName is the name a schedule is written under for the format.
func FileName(s *Schedule, format Format) string {
	return s.Name() + "." + format.Ext()
}

// ParseFileName recovers the node index from a generated file name
// (sink.xml -> -1, host_12.yaml -> 12) along with the format.
func ParseFileName(name string) (int, Format, error) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	format, err := ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s: %w", ErrFormat, base, err)
	}
	stem := strings.TrimSuffix(base, ext)
	if stem == GatewayFileName {
		return GatewayIndex, format, nil
	}
	idx, ok := strings.CutPrefix(stem, NodeFilePrefix)
	if !ok {
		return 0, "", fmt.Errorf("%w: %s is not a generated schedule name", ErrFormat, base)
	}
	i, err := strconv.Atoi(idx)
	if err != nil || i < 0 {
		return 0, "", fmt.Errorf("%w: %s has an invalid node index", ErrFormat, base)
	}
	return i, format, nil
}

func EncodeSchedule(s *Schedule, format Format) ([]byte, error) {
	switch format {
	case FormatXML:
		return MarshalXML(s)
	case FormatYAML:
		return yaml.Marshal(s)
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrConfig, format)
}

// WriteSchedule writes the schedule to path, creating parent directories.
func WriteSchedule(s *Schedule, path string, format Format) error {
	data, err := EncodeSchedule(s, format)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.Name(), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrIO, filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	return nil
}

// DecodeSchedule parses a schedule document. For XML, which carries no
// owner, the owner is derived from the gateway address and node index.
func DecodeSchedule(data []byte, format Format, gateway Address, nodeIndex int) (*Schedule, error) {
	switch format {
	case FormatXML:
		// the gateway index of -1 yields the gateway address itself
		owner, err := gateway.Add(nodeIndex + 1)
		if err != nil {
			return nil, err
		}
		return UnmarshalXML(data, owner, nodeIndex)
	case FormatYAML:
		s := &Schedule{}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("%w: parsing schedule: %w", ErrFormat, err)
		}
		s.Reclassify()
		return s, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", ErrConfig, format)
}

// ReadSchedule loads a generated schedule file, taking the node index and
// format from its name.
func ReadSchedule(path string, gateway Address) (*Schedule, error) {
	idx, format, err := ParseFileName(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}
	s, err := DecodeSchedule(data, format, gateway, idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}
