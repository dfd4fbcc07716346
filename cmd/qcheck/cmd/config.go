package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of qcheck's optional project-level YAML config,
// layered under CLI flags the same way medusa layers medusa.json under its
// own flags: the file supplies defaults, flags that were explicitly passed
// override them.
type fileConfig struct {
	Seed      int64 `yaml:"seed"`
	Runs      int   `yaml:"runs"`
	Verbosity int   `yaml:"verbosity"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{Seed: 0, Runs: 200, Verbosity: 0}
}

// loadFileConfig reads path if it exists, or returns defaultFileConfig if
// path is empty or the file is absent. Any other read/parse error is
// returned, since an explicitly-requested config file that can't be loaded
// should fail the run rather than silently fall back to defaults.
func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
