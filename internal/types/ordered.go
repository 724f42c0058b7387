package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// OrderedMap is a string-keyed mapping that remembers the order in which
// keys were first inserted. Decoding from JSON preserves document order and
// both JSON and YAML encoding emit keys in that order.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Entry is a single key/value pair of an OrderedMap.
type Entry[V any] struct {
	Key   string
	Value V
}

// NewOrderedMap builds a map from entries, keeping their order.
func NewOrderedMap[V any](entries ...Entry[V]) *OrderedMap[V] {
	m := &OrderedMap[V]{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores value under key. A new key is appended to the order; an
// existing key keeps its position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value stored under key or the zero value. Templates use
// it since they cannot consume two results.
func (m OrderedMap[V]) Value(key string) V {
	return m.values[key]
}

// Has reports whether key is present.
func (m OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// First returns the earliest inserted entry.
func (m OrderedMap[V]) First() (string, V, bool) {
	if len(m.keys) == 0 {
		var zero V
		return "", zero, false
	}
	k := m.keys[0]
	return k, m.values[k], true
}

// Entries returns the entries in insertion order.
func (m OrderedMap[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry[V]{Key: k, Value: m.values[k]})
	}
	return entries
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(k)
		if err != nil {
			return nil, err
		}
		val, err := marshalUnescaped(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in document order.
// Unknown fields inside struct values are rejected. A repeated key keeps its
// first position and its last value.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]V)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		m.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML encodes the mapping as an ordered YAML mapping.
func (m OrderedMap[V]) MarshalYAML() (interface{}, error) {
	slice := make(yaml.MapSlice, 0, len(m.keys))
	for _, k := range m.keys {
		slice = append(slice, yaml.MapItem{Key: k, Value: m.values[k]})
	}
	return slice, nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
