package hfs_test

import (
	"context"
	"os"
	"testing"

	"github.com/scem/paramrename/internal/hfs"
	"github.com/scem/paramrename/internal/hfs/hfstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, paths []string) hfs.OS {
	fs := hfstest.New(t)
	for _, path := range paths {
		err := hfs.WriteFile(fs, path, nil, 0644)
		require.NoError(t, err)
	}

	return fs
}

func TestGlobDirTopLevelOnly(t *testing.T) {
	fs := setup(t, []string{
		"b.json",
		"a.json",
		"notes.txt",
		"nested/c.json",
	})

	names, err := hfs.GlobDir(context.Background(), fs, "", "*.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"a.json", "b.json"}, names)
}

func TestGlobDirSubdir(t *testing.T) {
	fs := setup(t, []string{
		"top.json",
		"some/file2.json",
		"some/deep/file3.json",
	})

	names, err := hfs.GlobDir(context.Background(), fs, "some", "*.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"file2.json"}, names)
}

func TestGlobDirSkipsDirectories(t *testing.T) {
	fs := setup(t, []string{
		"dir.json/inner",
		"file.json",
	})

	names, err := hfs.GlobDir(context.Background(), fs, "", "*.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"file.json"}, names)
}

func TestGlobDirFollowsSymlinks(t *testing.T) {
	fs := setup(t, []string{
		"real.json",
	})

	err := os.Symlink(fs.Path("real.json"), fs.Path("link.json"))
	require.NoError(t, err)

	names, err := hfs.GlobDir(context.Background(), fs, "", "*.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"link.json", "real.json"}, names)
}

func TestGlobDirBraces(t *testing.T) {
	fs := setup(t, []string{
		"a.json",
		"b.jsonc",
		"c.yaml",
	})

	names, err := hfs.GlobDir(context.Background(), fs, "", "*.{json,jsonc}")
	require.NoError(t, err)

	assert.Equal(t, []string{"a.json", "b.jsonc"}, names)
}

func TestGlobDirMissing(t *testing.T) {
	fs := hfstest.New(t)

	_, err := hfs.GlobDir(context.Background(), fs, "nope", "*.json")
	require.ErrorIs(t, err, hfs.ErrNotExist)
}

func TestValidateNamePattern(t *testing.T) {
	tests := []struct {
		pattern string
		valid   bool
	}{
		{"*.json", true},
		{"patch_*.json", true},
		{"*.{json,jsonc}", true},
		{"", false},
		{"sub/*.json", false},
		{"[.json", false},
	}
	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			err := hfs.ValidateNamePattern(test.pattern)
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
