// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/datafixer/pkg/errutil"
)

func TestSchemaRegistry_FloorLookup(t *testing.T) {
	r := NewSchemaRegistry()
	require.NoError(t, r.Register(NewSchema(1, TypeRegistry{"player": "v1"})))
	require.NoError(t, r.Register(NewSchema(5, TypeRegistry{"player": "v5"})))

	s, ok := r.Get(3)
	require.True(t, ok)
	assert.Equal(t, DataVersion(1), s.Version)

	s, ok = r.Get(5)
	require.True(t, ok)
	assert.Equal(t, DataVersion(5), s.Version)

	_, ok = r.Get(0)
	assert.False(t, ok)
}

func TestSchemaRegistry_Require(t *testing.T) {
	r := NewSchemaRegistry()
	_, err := r.Require(1)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "DATAFIXER_SCHEMA_ERROR")
}

func TestSchemaRegistry_Latest(t *testing.T) {
	r := NewSchemaRegistry()
	require.NoError(t, r.Register(NewSchema(1, nil)))
	require.NoError(t, r.Register(NewSchema(3, nil)))
	require.NoError(t, r.Register(NewSchema(2, nil)))

	latest, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, DataVersion(3), latest.Version)
	assert.Equal(t, []DataVersion{1, 2, 3}, r.Versions())
}

// TestSchemaRegistry_FrozenRejectsMutation is P8 for SchemaRegistry.
func TestSchemaRegistry_FrozenRejectsMutation(t *testing.T) {
	r := NewSchemaRegistry()
	require.NoError(t, r.Register(NewSchema(1, nil)))
	r.Freeze()
	assert.True(t, r.IsFrozen())

	err := r.Register(NewSchema(2, nil))
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "DATAFIXER_SCHEMA_ERROR")
}

func TestSchema_ParentInheritance(t *testing.T) {
	v1 := NewSchema(1, TypeRegistry{"player": "v1", "world": "v1"})
	v2 := NewSchema(2, TypeRegistry{"player": "v2"}).WithParent(v1)

	got, ok := v2.Get("player")
	require.True(t, ok)
	assert.Equal(t, "v2", got)

	got, ok = v2.Get("world")
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	_, ok = v2.Get("missing")
	assert.False(t, ok)
}

func TestDataFixRegistry_FrozenRejectsMutation(t *testing.T) {
	r := NewDataFixRegistry()
	r.Freeze()
	err := r.Add(player, renameFix("x", 1, 2, "a", "b"))
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "DATAFIXER_SCHEMA_ERROR")
}

func TestDataFixRegistry_GetFixesRangeAndHasFixesInRange(t *testing.T) {
	r := NewDataFixRegistry()
	require.NoError(t, r.Add(player, renameFix("f1", 1, 2, "a", "b")))
	require.NoError(t, r.Add(player, renameFix("f2", 3, 4, "c", "d")))

	fixes := r.GetFixes(player, 1, 3)
	require.Len(t, fixes, 2)
	assert.Equal(t, "f1", fixes[0].Name())
	assert.Equal(t, "f2", fixes[1].Name())

	assert.True(t, r.HasFixesInRange(player, 0, 1))
	assert.False(t, r.HasFixesInRange(player, 1, 1))
	assert.True(t, r.HasFixesInRange(player, 2, 4))
}
