package rename

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
)

// Rename records one parameter substitution performed on a connection.
type Rename struct {
	Connection int
	Node       string
	From       string
	To         string
}

func (r Rename) String() string {
	return fmt.Sprintf("%v: %v -> %v", r.Node, r.From, r.To)
}

// fromNode is the part of a connection's from_node this tool reads.
type fromNode struct {
	Name      string `mapstructure:"name"`
	ParamName string `mapstructure:"param_name"`
}

// json.Number has a string kind, mapstructure would happily assign it to a string field.
func rejectNumberAsString(from reflect.Type, to reflect.Type, data any) (any, error) {
	if _, ok := data.(json.Number); ok && to.Kind() == reflect.String {
		return nil, fmt.Errorf("expected a string, got number %v", data)
	}

	return data, nil
}

// decodeFromNode reads name and param_name off a connection record.
// ok is false when the record has no usable from_node object.
func decodeFromNode(conn any) (map[string]any, fromNode, bool) {
	connm, ok := conn.(map[string]any)
	if !ok {
		return nil, fromNode{}, false
	}

	raw, ok := connm[fieldFromNode].(map[string]any)
	if !ok {
		return nil, fromNode{}, false
	}

	var fn fromNode
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &fn,
		DecodeHook: mapstructure.DecodeHookFuncType(rejectNumberAsString),
	})
	if err != nil {
		return nil, fromNode{}, false
	}

	err = dec.Decode(raw)
	if err != nil {
		return nil, fromNode{}, false
	}

	return connm, fn, true
}

// Rewrite applies the mapping to every connection of doc, in order.
//
// doc is never modified: when at least one parameter is renamed, a copy sharing
// all untouched values with doc is returned, otherwise doc itself is returned.
// Each connection is renamed at most once, renames do not chain.
func (m Mapping) Rewrite(doc Document) (Document, []Rename, error) {
	rawConns, ok := doc[fieldConnections]
	if !ok || rawConns == nil {
		return doc, nil, nil
	}

	conns, ok := rawConns.([]any)
	if !ok {
		return nil, nil, &ParseError{Err: fmt.Errorf("%v: expected an array, got %T", fieldConnections, rawConns)}
	}

	var renames []Rename
	var newConns []any
	for i, conn := range conns {
		connm, fn, ok := decodeFromNode(conn)
		if !ok {
			continue
		}

		to, ok := m.Lookup(fn.Name, fn.ParamName)
		if !ok {
			continue
		}

		if newConns == nil {
			newConns = slices.Clone(conns)
		}

		newFromNode := maps.Clone(connm[fieldFromNode].(map[string]any)) //nolint:errcheck
		newFromNode[fieldParamName] = to

		newConn := maps.Clone(connm)
		newConn[fieldFromNode] = newFromNode

		newConns[i] = newConn

		renames = append(renames, Rename{
			Connection: i,
			Node:       fn.Name,
			From:       fn.ParamName,
			To:         to,
		})
	}

	if len(renames) == 0 {
		return doc, nil, nil
	}

	newDoc := maps.Clone(doc)
	newDoc[fieldConnections] = newConns

	return newDoc, renames, nil
}
