// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/datafixer/pkg/dynamic"
	"github.com/holomush/datafixer/pkg/errutil"
)

func TestDataFixerBuilder_BuildFreezesRegistry(t *testing.T) {
	builder := NewDataFixerBuilder[any](2)
	builder.AddFix(player, renameFix("f", 1, 2, "a", "b"))
	df, err := builder.Build()
	require.NoError(t, err)
	assert.Equal(t, DataVersion(2), df.CurrentVersion())

	// P8: registering against the builder's registry after Build's implicit
	// freeze must fail.
	err = builder.Register(player, renameFix("late", 1, 2, "c", "d"))
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "DATAFIXER_SCHEMA_ERROR")
}

func TestDataFixerBuilder_WithDefaultContextIsThreaded(t *testing.T) {
	rec := Recording()
	builder := NewDataFixerBuilder[any](2).WithDefaultContext(rec)
	builder.AddFix(player, NewFix[any]("log", 1, 2, func(_ TypeReference, v dynamic.Value[any], ctx Context) (dynamic.Value[any], error) {
		ctx.Info("logged")
		return v, nil
	}))
	df, err := builder.Build()
	require.NoError(t, err)

	_, err = df.Update(player, parseJSON(t, `{}`), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"logged"}, rec.Infos())
}

type stubBootstrap struct {
	registerSchemas func(*SchemaRegistry) error
	registerFixes   func(FixRegistrar) error
}

func (s stubBootstrap) RegisterSchemas(r *SchemaRegistry) error { return s.registerSchemas(r) }
func (s stubBootstrap) RegisterFixes(r FixRegistrar) error      { return s.registerFixes(r) }

func TestNewRuntime_WiresSchemasAndFixes(t *testing.T) {
	bootstrap := stubBootstrap{
		registerSchemas: func(r *SchemaRegistry) error {
			return r.Register(NewSchema(1, TypeRegistry{"player": "v1"}))
		},
		registerFixes: func(r FixRegistrar) error {
			return r.Register(player, renameFix("rename", 1, 2, "a", "b"))
		},
	}

	df, schemas, err := NewRuntime[any](2, bootstrap)
	require.NoError(t, err)
	assert.True(t, schemas.IsFrozen())

	s, ok := schemas.Get(1)
	require.True(t, ok)
	assert.Equal(t, "v1", s.Types["player"])

	out, err := df.Update(player, parseJSON(t, `{"a":1}`), 1, 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":1}`, toJSON(t, out))
}

func TestNewRuntime_PropagatesSchemaBootstrapError(t *testing.T) {
	boom := SchemaError("boom")
	bootstrap := stubBootstrap{
		registerSchemas: func(r *SchemaRegistry) error { return boom },
		registerFixes:   func(r FixRegistrar) error { return nil },
	}
	_, _, err := NewRuntime[any](1, bootstrap)
	require.Error(t, err)
}

func TestNewRuntime_PropagatesFixBootstrapError(t *testing.T) {
	boom := SchemaError("boom")
	bootstrap := stubBootstrap{
		registerSchemas: func(r *SchemaRegistry) error { return nil },
		registerFixes:   func(r FixRegistrar) error { return boom },
	}
	_, _, err := NewRuntime[any](1, bootstrap)
	require.Error(t, err)
}
