package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/encodeous/slotframe/state"
	"github.com/goccy/go-yaml"
)

const DefaultConfigPath = "slotframe.yaml"

// readGeneratorConfig loads path over the defaults. A missing file at the
// default path is not an error, so flags alone are enough to run.
func readGeneratorConfig(path string, explicit bool) (state.GeneratorCfg, error) {
	cfg := state.DefaultGeneratorCfg()
	file, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: reading config %s: %w", state.ErrIO, path, err)
	}
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: parsing config %s: %w", state.ErrConfig, path, err)
	}
	state.ExpandGeneratorConfig(&cfg)
	return cfg, nil
}

func writeGeneratorConfig(path string, cfg state.GeneratorCfg) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
