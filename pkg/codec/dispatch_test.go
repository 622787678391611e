// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/datafixer/pkg/dynamic"
)

type shape interface {
	kind() string
}

type circle struct{ radius int64 }

func (circle) kind() string { return "circle" }

type square struct{ side int64 }

func (square) kind() string { return "square" }

func shapeCodec() Codec[shape, any] {
	circleCodec := Xmap(FieldOf("radius", Int64[any]()),
		func(r int64) shape { return circle{radius: r} },
		func(s shape) int64 { return s.(circle).radius },
	)
	squareCodec := Xmap(FieldOf("side", Int64[any]()),
		func(s int64) shape { return square{side: s} },
		func(s shape) int64 { return s.(square).side },
	)
	return Dispatched("type", String[any](),
		func(s shape) string { return s.kind() },
		func(k string) (Codec[shape, any], bool) {
			switch k {
			case "circle":
				return circleCodec, true
			case "square":
				return squareCodec, true
			default:
				return Codec[shape, any]{}, false
			}
		},
	)
}

func TestDispatched_RoundTripEachVariant(t *testing.T) {
	c := shapeCodec()

	for _, s := range []shape{circle{radius: 5}, square{side: 3}} {
		encoded := c.EncodeStart(s, dynamic.JSONOps)
		require.True(t, encoded.IsSuccess())
		assert.True(t, dynamic.JSONOps.Has(encoded.MustGet(), "type"))

		decoded := c.DecodeValue(dynamic.JSONOps, encoded.MustGet())
		require.True(t, decoded.IsSuccess())
		assert.Equal(t, s, decoded.MustGet())
	}
}

func TestDispatched_UnknownKeyFails(t *testing.T) {
	c := shapeCodec()
	m := dynamic.JSONOps.CreateMap([]dynamic.Pair[any, any]{
		dynamic.NewPair[any, any]("type", "triangle"),
	})
	decoded := c.DecodeValue(dynamic.JSONOps, m)
	require.True(t, decoded.IsError())
	assert.Contains(t, decoded.ErrorMessage(), "Unknown dispatch key: triangle")
}
