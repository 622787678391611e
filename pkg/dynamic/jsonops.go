// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

import (
	"fmt"
	"strconv"

	omap "github.com/wk8/go-ordered-map/v2"
)

// jsonMap is the map representation used by JSONOps. encoding/json decodes
// objects into map[string]any, which does not preserve iteration order;
// the spec requires order-preserving maps (§9 "Ordered maps"), so JSONOps
// represents object nodes as an *omap.OrderedMap[string, any] instead.
type jsonMap = omap.OrderedMap[string, any]

// jsonOps implements Ops[any] over the node shapes ParseJSON produces
// (nil, bool, int64, float64, string, []any) plus jsonMap for objects.
type jsonOps struct{}

// JSONOps is the process-wide JSON Ops singleton. Safe for concurrent use.
var JSONOps Ops[any] = jsonOps{}

func (jsonOps) Empty() any     { return nil }
func (jsonOps) EmptyList() any { return []any{} }
func (jsonOps) EmptyMap() any  { return omap.New[string, any]() }

func (jsonOps) IsMap(v any) bool {
	_, ok := v.(*jsonMap)
	return ok
}

func (jsonOps) IsList(v any) bool {
	_, ok := v.([]any)
	return ok
}

func (jsonOps) IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

func (jsonOps) IsNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64:
		return true
	default:
		return false
	}
}

func (jsonOps) IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

func (o jsonOps) Equal(a, b any) bool {
	switch av := a.(type) {
	case *jsonMap:
		bv, ok := b.(*jsonMap)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		bi := bv.Oldest()
		for ai := av.Oldest(); ai != nil; ai = ai.Next() {
			if bi == nil || ai.Key != bi.Key || !o.Equal(ai.Value, bi.Value) {
				return false
			}
			bi = bi.Next()
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !o.Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return jsonScalarEqual(a, b)
	}
}

func jsonScalarEqual(a, b any) bool {
	an, aIsNum := jsonAsNumber(a)
	bn, bIsNum := jsonAsNumber(b)
	if aIsNum && bIsNum {
		return an.Float64() == bn.Float64() && an.IsInteger() == bn.IsInteger()
	}
	return a == b
}

func (jsonOps) CreateString(s string) any  { return s }
func (jsonOps) CreateBoolean(b bool) any   { return b }
func (jsonOps) CreateByte(v int8) any      { return int64(v) }
func (jsonOps) CreateShort(v int16) any    { return int64(v) }
func (jsonOps) CreateInt(v int32) any      { return int64(v) }
func (jsonOps) CreateLong(v int64) any     { return v }
func (jsonOps) CreateFloat(v float32) any  { return float64(v) }
func (jsonOps) CreateDouble(v float64) any { return v }

func (o jsonOps) CreateNumeric(n Number) any {
	if n.IsInteger() {
		return n.Int64()
	}
	return n.Float64()
}

func jsonAsNumber(v any) (Number, bool) {
	switch n := v.(type) {
	case int64:
		return IntNumber(n), true
	case int:
		return IntNumber(n), true
	case int32:
		return IntNumber(n), true
	case int16:
		return IntNumber(n), true
	case int8:
		return IntNumber(n), true
	case float64:
		return FloatNumber(n), true
	case float32:
		return FloatNumber(n), true
	default:
		return nil, false
	}
}

func (jsonOps) GetStringValue(v any) Result[string] {
	if s, ok := v.(string); ok {
		return Success(s)
	}
	return Error[string](fmt.Sprintf("Not a string: %v", v))
}

func (jsonOps) GetNumberValue(v any) Result[Number] {
	if n, ok := jsonAsNumber(v); ok {
		return Success(n)
	}
	return Error[Number](fmt.Sprintf("Not a number: %v", v))
}

func (jsonOps) GetBooleanValue(v any) Result[bool] {
	if b, ok := v.(bool); ok {
		return Success(b)
	}
	return Error[bool](fmt.Sprintf("Not a boolean: %v", v))
}

func (jsonOps) CreateList(items []any) any {
	out := make([]any, len(items))
	copy(out, items)
	return out
}

func (jsonOps) GetList(v any) Result[[]any] {
	if l, ok := v.([]any); ok {
		out := make([]any, len(l))
		copy(out, l)
		return Success(out)
	}
	return Error[[]any](fmt.Sprintf("Not a list: %v", v))
}

func (o jsonOps) MergeToList(list any, value any) Result[any] {
	var items []any
	switch l := list.(type) {
	case []any:
		items = append(items, l...)
	case nil:
		// Empty() sentinel.
	default:
		return Error[any](fmt.Sprintf("Not a list: %v", list))
	}
	items = append(items, value)
	return Success[any](items)
}

func (o jsonOps) CreateMap(entries []Pair[any, any]) any {
	m := omap.New[string, any](len(entries))
	for _, e := range entries {
		if e.First == nil {
			continue
		}
		key := jsonKeyString(o, e.First)
		value := e.Second
		if value == nil {
			value = o.Empty()
		}
		m.Set(key, value)
	}
	return m
}

func jsonKeyString(o jsonOps, key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	if n, ok := jsonAsNumber(key); ok {
		if n.IsInteger() {
			return strconv.FormatInt(n.Int64(), 10)
		}
		return strconv.FormatFloat(n.Float64(), 'g', -1, 64)
	}
	if b, ok := key.(bool); ok {
		return strconv.FormatBool(b)
	}
	return fmt.Sprintf("%v", key)
}

func (jsonOps) GetMapEntries(v any) Result[[]Pair[any, any]] {
	m, ok := v.(*jsonMap)
	if !ok {
		return Error[[]Pair[any, any]](fmt.Sprintf("Not a map: %v", v))
	}
	entries := make([]Pair[any, any], 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		entries = append(entries, NewPair[any, any](p.Key, p.Value))
	}
	return Success(entries)
}

func (o jsonOps) MergeToMap(m any, key any, value any) Result[any] {
	base, ok := jsonMapOrEmpty(m)
	if !ok {
		return Error[any](fmt.Sprintf("Not a map: %v", m))
	}
	keyStr, ok := key.(string)
	if !ok {
		return Error[any](fmt.Sprintf("key must be a string: %v", key))
	}
	result := cloneJSONMap(base)
	if value == nil {
		value = o.Empty()
	}
	result.Set(keyStr, value)
	return Success[any](result)
}

func (o jsonOps) MergeMaps(m any, other any) Result[any] {
	base, ok := jsonMapOrEmpty(m)
	if !ok {
		return Error[any](fmt.Sprintf("Not a map: %v", m))
	}
	overlay, ok := other.(*jsonMap)
	if !ok {
		return Error[any](fmt.Sprintf("Not a map: %v", other))
	}
	result := cloneJSONMap(base)
	for p := overlay.Oldest(); p != nil; p = p.Next() {
		result.Set(p.Key, p.Value)
	}
	return Success[any](result)
}

func jsonMapOrEmpty(v any) (*jsonMap, bool) {
	if m, ok := v.(*jsonMap); ok {
		return m, true
	}
	if v == nil {
		return omap.New[string, any](), true
	}
	return nil, false
}

func cloneJSONMap(m *jsonMap) *jsonMap {
	out := omap.New[string, any](m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}

func (jsonOps) Get(v any, key string) (any, bool) {
	m, ok := v.(*jsonMap)
	if !ok {
		return nil, false
	}
	return m.Get(key)
}

func (o jsonOps) Set(v any, key string, value any) any {
	base, ok := jsonMapOrEmpty(v)
	if !ok {
		base = omap.New[string, any]()
	}
	result := cloneJSONMap(base)
	result.Set(key, value)
	return result
}

func (jsonOps) Remove(v any, key string) any {
	m, ok := v.(*jsonMap)
	if !ok {
		return v
	}
	result := cloneJSONMap(m)
	result.Delete(key)
	return result
}

func (jsonOps) Has(v any, key string) bool {
	m, ok := v.(*jsonMap)
	if !ok {
		return false
	}
	_, present := m.Get(key)
	return present
}
