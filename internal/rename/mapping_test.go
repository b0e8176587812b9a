package rename

import (
	"testing"

	"github.com/scem/paramrename/internal/hfs"
	"github.com/scem/paramrename/internal/hfs/hfstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapping(t *testing.T) {
	m, err := ParseMapping([]byte(`{
		"Filter": {"old_to_new": {"cutoff": "cutoff_hz", "res": "resonance"}, "new_to_old": {"cutoff_hz": "cutoff"}},
		"Osc": {"old_to_new": {}},
		"Env": {}
	}`))
	require.NoError(t, err)

	assert.Equal(t, Mapping{
		"Filter": {OldToNew: map[string]string{"cutoff": "cutoff_hz", "res": "resonance"}},
		"Osc":    {OldToNew: map[string]string{}},
		"Env":    {},
	}, m)
	assert.Equal(t, 2, m.Len())
}

func TestMappingLookup(t *testing.T) {
	m := Mapping{
		"Filter": {OldToNew: map[string]string{"cutoff": "cutoff_hz"}},
		"Env":    {},
	}

	to, ok := m.Lookup("Filter", "cutoff")
	assert.True(t, ok)
	assert.Equal(t, "cutoff_hz", to)

	_, ok = m.Lookup("Filter", "cutoff_hz")
	assert.False(t, ok)

	_, ok = m.Lookup("Env", "attack")
	assert.False(t, ok)

	_, ok = m.Lookup("Osc", "freq")
	assert.False(t, ok)
}

func TestParseMappingErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ``},
		{"invalid json", `{"Filter": `},
		{"not an object", `[1, 2]`},
		{"null", `null`},
		{"node not an object", `{"Filter": "cutoff"}`},
		{"rename not a string", `{"Filter": {"old_to_new": {"cutoff": 1}}}`},
		{"empty new name", `{"Filter": {"old_to_new": {"cutoff": ""}}}`},
		{"trailing data", `{"Filter": {}} {}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseMapping([]byte(test.content))

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestLoadMapping(t *testing.T) {
	fs := hfstest.New(t)

	err := hfs.WriteFile(fs, "mapping.json", []byte(`{"Filter": {"old_to_new": {"cutoff": "cutoff_hz"}}}`), 0644)
	require.NoError(t, err)

	m, err := LoadMapping(fs, "mapping.json")
	require.NoError(t, err)

	assert.Equal(t, Mapping{"Filter": {OldToNew: map[string]string{"cutoff": "cutoff_hz"}}}, m)
}

func TestLoadMappingNotFound(t *testing.T) {
	fs := hfstest.New(t)

	_, err := LoadMapping(fs, "missing.json")

	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "missing.json", nferr.Path)
	assert.ErrorIs(t, err, hfs.ErrNotExist)
}

func TestLoadMappingParseError(t *testing.T) {
	fs := hfstest.New(t)

	err := hfs.WriteFile(fs, "mapping.json", []byte(`{not json`), 0644)
	require.NoError(t, err)

	_, err = LoadMapping(fs, "mapping.json")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "mapping.json", perr.Path)
	assert.Contains(t, err.Error(), "mapping.json: parse:")
}
