package rename

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"github.com/scem/paramrename/internal/hfs"
)

// Mapping maps a node type name to the renames of its parameters.
type Mapping map[string]NodeMapping

// NodeMapping lists the parameter renames of one node type.
// Fields other than old_to_new are ignored.
type NodeMapping struct {
	OldToNew map[string]string `json:"old_to_new"`
}

// Lookup returns the new name of param on node, if it was renamed.
func (m Mapping) Lookup(node, param string) (string, bool) {
	nm, ok := m[node]
	if !ok {
		return "", false
	}

	to, ok := nm.OldToNew[param]

	return to, ok
}

// Len returns the number of renames across all node types.
func (m Mapping) Len() int {
	var n int
	for _, nm := range m {
		n += len(nm.OldToNew)
	}

	return n
}

func (m Mapping) validate() error {
	nodes := make([]string, 0, len(m))
	for node := range m {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	for _, node := range nodes {
		for from, to := range m[node].OldToNew {
			if to == "" {
				return fmt.Errorf("%v: %q is renamed to an empty name", node, from)
			}
		}
	}

	return nil
}

// ParseMapping decodes a rename mapping document.
func ParseMapping(b []byte) (Mapping, error) {
	var m Mapping
	err := decodeStrict(b, &m)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if m == nil {
		return nil, &ParseError{Err: errors.New("mapping must be a JSON object")}
	}

	err = m.validate()
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return m, nil
}

// LoadMapping reads and decodes the rename mapping at path.
func LoadMapping(fs hfs.FS, path string) (Mapping, error) {
	b, err := hfs.ReadFile(fs, path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	m, err := ParseMapping(b)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}

		return nil, err
	}

	return m, nil
}

// decodeStrict decodes exactly one JSON value from b into v, numbers are kept as json.Number.
func decodeStrict(b []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	err := dec.Decode(v)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}

		return err
	}

	var extra any
	err = dec.Decode(&extra)
	if !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}

	return nil
}
