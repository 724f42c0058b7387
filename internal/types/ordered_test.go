package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap_UnmarshalJSON_PreservesDocumentOrder(t *testing.T) {
	var m OrderedMap[[]string]
	err := json.Unmarshal([]byte(`{"zeta":["a"],"alpha":["b","c"],"mid":[]}`), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, v)
}

func TestOrderedMap_UnmarshalJSON_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	var m OrderedMap[string]
	err := json.Unmarshal([]byte(`{"a":"1","b":"2","a":"3"}`), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, "3", m.Value("a"))
}

func TestOrderedMap_UnmarshalJSON_RejectsNonObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `["a"]`},
		{"string", `"a"`},
		{"null", `null`},
		{"wrong value type", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m OrderedMap[string]
			assert.Error(t, json.Unmarshal([]byte(tt.input), &m))
		})
	}
}

func TestOrderedMap_UnmarshalJSON_RejectsUnknownStructFields(t *testing.T) {
	var m OrderedMap[RoleTarget]
	err := json.Unmarshal([]byte(`{"staff":{"keywords":[],"emphasis":{"summary":"x"},"extra":true}}`), &m)
	assert.Error(t, err)
}

func TestOrderedMap_MarshalJSON_InsertionOrder(t *testing.T) {
	m := NewOrderedMap(
		Entry[string]{Key: "default", Value: "Builds <systems> & teams"},
		Entry[string]{Key: "architect", Value: "Designs"},
	)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"default":"Builds <systems> & teams","architect":"Designs"}`, string(data))
}

func TestOrderedMap_MarshalJSON_Empty(t *testing.T) {
	var m OrderedMap[string]
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestOrderedMap_MarshalYAML_InsertionOrder(t *testing.T) {
	m := NewOrderedMap(
		Entry[[]string]{Key: "Languages", Value: []string{"Go", "TypeScript"}},
		Entry[[]string]{Key: "Cloud", Value: []string{"AWS"}},
	)

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, "Languages"), strings.Index(out, "Cloud"))
	assert.Contains(t, out, "- Go")
}

func TestOrderedMap_SetExistingKeyKeepsPosition(t *testing.T) {
	m := NewOrderedMap[string]()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	k, v, ok := m.First()
	require.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, "3", v)
}

func TestOrderedMap_FirstOnEmpty(t *testing.T) {
	var m OrderedMap[string]
	_, _, ok := m.First()
	assert.False(t, ok)
	assert.Empty(t, m.Entries())
	assert.False(t, m.Has("a"))
}

func TestOrderedMap_KeysReturnsCopy(t *testing.T) {
	m := NewOrderedMap(Entry[string]{Key: "a", Value: "1"})
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, m.Keys())
}
