package graph

import (
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record is one row of query output: an ordered mapping from field name to
// value. Values are dynamically typed (string, number, bool, nil, list, map);
// nodes and relationships arrive as nested maps.
type Record struct {
	// Keys lists the field names in the order the query returned them.
	Keys []string

	values map[string]any
}

// NewRecord builds a record from parallel key and value slices, converting
// driver types to plain Go values. Missing values come through as nil.
func NewRecord(keys []string, values []any) *Record {
	r := &Record{
		Keys:   make([]string, len(keys)),
		values: make(map[string]any, len(keys)),
	}
	copy(r.Keys, keys)
	for i, key := range keys {
		var v any
		if i < len(values) {
			v = convertValue(values[i])
		}
		r.values[key] = v
	}
	return r
}

// Get returns the value for a field name and whether the field exists.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// AsMap returns a copy of the record as a plain map. Field order is lost;
// use Keys when order matters.
func (r *Record) AsMap() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// String renders the record in field order.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, key := range r.Keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", key, r.values[key])
	}
	b.WriteString("}")
	return b.String()
}

// convertValue converts Neo4j driver types to Go native types.
func convertValue(val any) any {
	switch v := val.(type) {
	case neo4j.Node:
		return map[string]any{
			"labels":     v.Labels,
			"properties": convertValue(v.Props),
			"id":         v.ElementId,
		}
	case neo4j.Relationship:
		return map[string]any{
			"type":       v.Type,
			"properties": convertValue(v.Props),
			"startNode":  v.StartElementId,
			"endNode":    v.EndElementId,
		}
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = convertValue(item)
		}
		return result
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, item := range v {
			result[k] = convertValue(item)
		}
		return result
	default:
		return v
	}
}
