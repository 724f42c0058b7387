// Package flatten turns a JSON value tree into (path, value) rows.
package flatten

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Row is a single leaf of a flattened value.
type Row struct {
	Path  string
	Value string
}

// FromValue converts any JSON-encodable value into the generic tree
// (map[string]any, []any, string, bool, json.Number, nil) that Rows walks.
func FromValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	return out, nil
}

// Rows flattens v depth-first. Object keys are visited in lexicographic
// order, nested keys are joined with "." and array elements use "[i]".
// A scalar at the root yields a single row with an empty path.
func Rows(v any) []Row {
	rows := []Row{}
	walk(v, "", &rows)
	return rows
}

func walk(v any, path string, rows *[]Row) {
	switch t := v.(type) {
	case nil:
		*rows = append(*rows, Row{Path: path, Value: ""})
	case string:
		*rows = append(*rows, Row{Path: path, Value: t})
	case bool:
		*rows = append(*rows, Row{Path: path, Value: strconv.FormatBool(t)})
	case json.Number:
		*rows = append(*rows, Row{Path: path, Value: formatNumber(t)})
	case float64:
		*rows = append(*rows, Row{Path: path, Value: strconv.FormatFloat(t, 'f', -1, 64)})
	case []any:
		for i, item := range t {
			walk(item, fmt.Sprintf("%s[%d]", path, i), rows)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := k
			if path != "" {
				child = path + "." + k
			}
			walk(t[k], child, rows)
		}
	default:
		generic, err := FromValue(t)
		if err != nil {
			*rows = append(*rows, Row{Path: path, Value: fmt.Sprint(t)})
			return
		}
		walk(generic, path, rows)
	}
}

// formatNumber prints the shortest decimal form, so 1.50 becomes 1.5 and
// 2.0 becomes 2.
func formatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}
