// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseYAML(t *testing.T, s string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(s), &doc))
	return doc.Content[0]
}

func TestYAMLOps_BasicPredicates(t *testing.T) {
	n := parseYAML(t, `a: 1
b: "two"
c: [1, 2, 3]
d: true
e: null
`)
	assert.True(t, YAMLOps.IsMap(n))

	v, ok := YAMLOps.Get(n, "a")
	require.True(t, ok)
	assert.True(t, YAMLOps.IsNumber(v))

	v, ok = YAMLOps.Get(n, "b")
	require.True(t, ok)
	assert.True(t, YAMLOps.IsString(v))

	v, ok = YAMLOps.Get(n, "c")
	require.True(t, ok)
	assert.True(t, YAMLOps.IsList(v))

	v, ok = YAMLOps.Get(n, "d")
	require.True(t, ok)
	assert.True(t, YAMLOps.IsBoolean(v))
}

// TestYAMLOps_SetImmutability is P1 for the YAML backend.
func TestYAMLOps_SetImmutability(t *testing.T) {
	n := parseYAML(t, `a: 1`)
	before := n.Content[1].Value

	updated := YAMLOps.Set(n, "b", YAMLOps.CreateString("x"))

	assert.Equal(t, before, n.Content[1].Value)
	assert.False(t, YAMLOps.Has(n, "b"))
	assert.True(t, YAMLOps.Has(updated, "b"))
}

func TestYAMLOps_RemoveKeepsOtherKeys(t *testing.T) {
	n := parseYAML(t, `a: 1
b: 2
c: 3
`)
	removed := YAMLOps.Remove(n, "b")
	assert.True(t, YAMLOps.Has(removed, "a"))
	assert.False(t, YAMLOps.Has(removed, "b"))
	assert.True(t, YAMLOps.Has(removed, "c"))
	assert.True(t, YAMLOps.Has(n, "b"), "original must be unchanged")
}

func TestYAMLOps_MapOrderPreserved(t *testing.T) {
	n := parseYAML(t, `z: 1
a: 2
m: 3
`)
	entries := YAMLOps.GetMapEntries(n).MustGet()
	require.Len(t, entries, 3)
	assert.Equal(t, "z", entries[0].First.Value)
	assert.Equal(t, "a", entries[1].First.Value)
	assert.Equal(t, "m", entries[2].First.Value)
}

func TestYAMLOps_PrimitiveFailureMessages(t *testing.T) {
	n := parseYAML(t, `x: "s"`)
	v, _ := YAMLOps.Get(n, "x")
	assert.Equal(t, "Not a number: s", YAMLOps.GetNumberValue(v).ErrorMessage())
}

func TestYAMLOps_MergeToListOnNull(t *testing.T) {
	null := YAMLOps.Empty()
	merged := YAMLOps.MergeToList(null, YAMLOps.CreateString("x"))
	require.True(t, merged.IsSuccess())
	items := YAMLOps.GetList(merged.MustGet()).MustGet()
	require.Len(t, items, 1)
	assert.Equal(t, "x", items[0].Value)
}
