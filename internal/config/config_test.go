package config

import (
	"path/filepath"
	"testing"

	"github.com/scem/paramrename/internal/hfs"
	"github.com/scem/paramrename/internal/hfs/hfstest"
	"github.com/scem/paramrename/internal/rename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	cfg := Config{Pattern: "sub/*.json"}

	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "mapping path must not be empty")
	assert.Contains(t, err.Error(), "target dir must not be empty")
	assert.Contains(t, err.Error(), "pattern:")
}

func TestParseYAMLConfig(t *testing.T) {
	fs := hfstest.New(t)

	err := hfs.WriteFile(fs, DefaultFile, []byte("mapping: maps/rename.json\ndir: /srv/patches\ndryRun: true\n"), 0644)
	require.NoError(t, err)

	inc, err := ParseYAMLConfig(fs, DefaultFile)
	require.NoError(t, err)

	cfg := ApplyYAMLConfig(Default(), inc, "/repo")

	assert.Equal(t, Config{
		MappingPath: filepath.Join("/repo", "maps/rename.json"),
		TargetDir:   "/srv/patches",
		Pattern:     rename.DefaultPattern,
		DryRun:      true,
	}, cfg)
}

func TestParseYAMLConfigUnknownField(t *testing.T) {
	fs := hfstest.New(t)

	err := hfs.WriteFile(fs, DefaultFile, []byte("mappings: rename.json\n"), 0644)
	require.NoError(t, err)

	_, err = ParseYAMLConfig(fs, DefaultFile)
	require.Error(t, err)
}

func TestApplyYAMLConfigEmpty(t *testing.T) {
	cfg := ApplyYAMLConfig(Default(), YAMLConfig{}, "/repo")

	assert.Equal(t, Default(), cfg)
}

func TestOptions(t *testing.T) {
	cfg := Config{MappingPath: "m.json", TargetDir: "docs", Pattern: "*.json", DryRun: true}

	assert.Equal(t, rename.Options{MappingPath: "m.json", TargetDir: "docs", Pattern: "*.json", DryRun: true}, cfg.Options())
}
