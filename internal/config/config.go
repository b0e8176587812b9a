package config

import (
	"errors"
	"fmt"

	"github.com/scem/paramrename/internal/hfs"
	"github.com/scem/paramrename/internal/rename"
)

const (
	DefaultMappingPath = "parameter_rename_mapping.json"
	DefaultTargetDir   = "examples"
	DefaultFile        = ".paramrename.yaml"
)

type Config struct {
	MappingPath string
	TargetDir   string
	Pattern     string
	DryRun      bool
}

func Default() Config {
	return Config{
		MappingPath: DefaultMappingPath,
		TargetDir:   DefaultTargetDir,
		Pattern:     rename.DefaultPattern,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.MappingPath == "" {
		errs = append(errs, errors.New("mapping path must not be empty"))
	}
	if c.TargetDir == "" {
		errs = append(errs, errors.New("target dir must not be empty"))
	}
	if err := hfs.ValidateNamePattern(c.Pattern); err != nil {
		errs = append(errs, fmt.Errorf("pattern: %w", err))
	}

	return errors.Join(errs...)
}

func (c Config) Options() rename.Options {
	return rename.Options{
		MappingPath: c.MappingPath,
		TargetDir:   c.TargetDir,
		Pattern:     c.Pattern,
		DryRun:      c.DryRun,
	}
}
