package config

import (
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scem/paramrename/internal/hfs"
)

type YAMLConfig struct {
	Mapping *string `yaml:"mapping"`
	Dir     *string `yaml:"dir"`
	Pattern *string `yaml:"pattern"`
	DryRun  *bool   `yaml:"dryRun"`
}

func ParseYAMLConfig(fs hfs.FS, path string) (YAMLConfig, error) {
	b, err := hfs.ReadFile(fs, path)
	if err != nil {
		return YAMLConfig{}, err
	}

	var cfg YAMLConfig
	err = yaml.UnmarshalWithOptions(b, &cfg, yaml.Strict())
	if err != nil {
		return YAMLConfig{}, err
	}

	return cfg, nil
}

// ApplyYAMLConfig overlays the fields set in inc onto cfg. Relative paths in inc
// are resolved against base, the directory holding the config file.
func ApplyYAMLConfig(cfg Config, inc YAMLConfig, base string) Config {
	resolve := func(p string) string {
		if filepath.IsAbs(p) || base == "" {
			return p
		}

		return filepath.Join(base, p)
	}

	if inc.Mapping != nil {
		cfg.MappingPath = resolve(*inc.Mapping)
	}

	if inc.Dir != nil {
		cfg.TargetDir = resolve(*inc.Dir)
	}

	if inc.Pattern != nil {
		cfg.Pattern = *inc.Pattern
	}

	if inc.DryRun != nil {
		cfg.DryRun = *inc.DryRun
	}

	return cfg
}
