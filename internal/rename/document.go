package rename

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

const (
	fieldConnections = "connections"
	fieldFromNode    = "from_node"
	fieldName        = "name"
	fieldParamName   = "param_name"
)

// Document is a decoded JSON object. Values are what a json.Number-preserving
// decoder yields: map[string]any, []any, string, json.Number, bool and nil.
type Document map[string]any

// ParseDocument decodes a JSON object.
func ParseDocument(b []byte) (Document, error) {
	var doc Document
	err := decodeStrict(b, &doc)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if doc == nil {
		return nil, &ParseError{Err: errors.New("document must be a JSON object")}
	}

	return doc, nil
}

// Encode renders doc as indented UTF-8 JSON terminated by a newline.
// Object keys are sorted.
func (doc Document) Encode() ([]byte, error) {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := enc.Encode(map[string]any(doc))
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
