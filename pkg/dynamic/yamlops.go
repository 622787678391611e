// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package dynamic

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlOps implements Ops[*yaml.Node] directly over yaml.v3's node tree,
// which is natively order-preserving for mapping nodes. yaml.Node has no
// built-in deep-copy, so yamlOps copies by hand on every mutating
// operation to uphold I1.
//
// A scalar counts as a boolean only when its Tag is !!bool; its value is
// then read from the scalar text with strconv.ParseBool, so text that
// ParseBool does not accept (e.g. yes/no/on/off under an explicit !!bool
// tag) reads as false.
type yamlOps struct{}

// YAMLOps is the process-wide YAML Ops singleton. Safe for concurrent use.
var YAMLOps Ops[*yaml.Node] = yamlOps{}

func (yamlOps) Empty() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func (yamlOps) EmptyList() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func (yamlOps) EmptyMap() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func yamlCloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	clone := *n
	clone.Content = make([]*yaml.Node, len(n.Content))
	for i, c := range n.Content {
		clone.Content[i] = yamlCloneNode(c)
	}
	return &clone
}

func yamlDocument(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		return n.Content[0]
	}
	return n
}

func isYAMLMap(n *yaml.Node) bool {
	n = yamlDocument(n)
	return n != nil && n.Kind == yaml.MappingNode
}

func (yamlOps) IsMap(n *yaml.Node) bool { return isYAMLMap(n) }

func isYAMLList(n *yaml.Node) bool {
	n = yamlDocument(n)
	return n != nil && n.Kind == yaml.SequenceNode
}

func (yamlOps) IsList(n *yaml.Node) bool { return isYAMLList(n) }

func (yamlOps) IsString(n *yaml.Node) bool {
	n = yamlDocument(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!str"
}

func (yamlOps) IsNumber(n *yaml.Node) bool {
	n = yamlDocument(n)
	return n != nil && n.Kind == yaml.ScalarNode && (n.Tag == "!!int" || n.Tag == "!!float")
}

func (yamlOps) IsBoolean(n *yaml.Node) bool {
	n = yamlDocument(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!bool"
}

func (o yamlOps) Equal(a, b *yaml.Node) bool {
	a, b = yamlDocument(a), yamlDocument(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case yaml.ScalarNode:
		if a.Tag != b.Tag {
			return false
		}
		if a.Tag == "!!int" || a.Tag == "!!float" {
			an, _ := jsonAsNumber(yamlScalarNumber(a))
			bn, _ := jsonAsNumber(yamlScalarNumber(b))
			return an != nil && bn != nil && an.Float64() == bn.Float64()
		}
		return a.Value == b.Value
	case yaml.SequenceNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !o.Equal(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	case yaml.MappingNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := 0; i < len(a.Content); i += 2 {
			if a.Content[i].Value != b.Content[i].Value || !o.Equal(a.Content[i+1], b.Content[i+1]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (yamlOps) CreateString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func (yamlOps) CreateBoolean(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}

func (yamlOps) CreateByte(v int8) *yaml.Node  { return yamlIntNode(int64(v)) }
func (yamlOps) CreateShort(v int16) *yaml.Node { return yamlIntNode(int64(v)) }
func (yamlOps) CreateInt(v int32) *yaml.Node  { return yamlIntNode(int64(v)) }
func (yamlOps) CreateLong(v int64) *yaml.Node { return yamlIntNode(v) }

func (yamlOps) CreateFloat(v float32) *yaml.Node  { return yamlFloatNode(float64(v)) }
func (yamlOps) CreateDouble(v float64) *yaml.Node { return yamlFloatNode(v) }

func yamlIntNode(v int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
}

func yamlFloatNode(v float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

func (o yamlOps) CreateNumeric(n Number) *yaml.Node {
	if n.IsInteger() {
		return yamlIntNode(n.Int64())
	}
	return yamlFloatNode(n.Float64())
}

func yamlScalarNumber(n *yaml.Node) Number {
	if n.Tag == "!!int" {
		i, _ := strconv.ParseInt(n.Value, 10, 64)
		return IntNumber(i)
	}
	f, _ := strconv.ParseFloat(n.Value, 64)
	return FloatNumber(f)
}

func (yamlOps) GetStringValue(n *yaml.Node) Result[string] {
	d := yamlDocument(n)
	if d != nil && d.Kind == yaml.ScalarNode && d.Tag == "!!str" {
		return Success(d.Value)
	}
	return Error[string](fmt.Sprintf("Not a string: %v", yamlRepr(n)))
}

func (yamlOps) GetNumberValue(n *yaml.Node) Result[Number] {
	d := yamlDocument(n)
	if d != nil && d.Kind == yaml.ScalarNode && (d.Tag == "!!int" || d.Tag == "!!float") {
		return Success(yamlScalarNumber(d))
	}
	return Error[Number](fmt.Sprintf("Not a number: %v", yamlRepr(n)))
}

func (yamlOps) GetBooleanValue(n *yaml.Node) Result[bool] {
	d := yamlDocument(n)
	if d != nil && d.Kind == yaml.ScalarNode && d.Tag == "!!bool" {
		b, _ := strconv.ParseBool(d.Value)
		return Success(b)
	}
	return Error[bool](fmt.Sprintf("Not a boolean: %v", yamlRepr(n)))
}

func yamlRepr(n *yaml.Node) string {
	if n == nil {
		return "<nil>"
	}
	d := yamlDocument(n)
	if d == nil {
		return "<nil>"
	}
	if d.Kind == yaml.ScalarNode {
		return d.Value
	}
	return fmt.Sprintf("<%d nodes>", len(d.Content))
}

func (yamlOps) CreateList(items []*yaml.Node) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		n.Content = append(n.Content, yamlCloneNode(item))
	}
	return n
}

func (yamlOps) GetList(n *yaml.Node) Result[[]*yaml.Node] {
	if !isYAMLList(n) {
		return Error[[]*yaml.Node](fmt.Sprintf("Not a list: %v", yamlRepr(n)))
	}
	d := yamlDocument(n)
	out := make([]*yaml.Node, len(d.Content))
	for i, c := range d.Content {
		out[i] = yamlCloneNode(c)
	}
	return Success(out)
}

func (o yamlOps) MergeToList(list *yaml.Node, value *yaml.Node) Result[*yaml.Node] {
	d := yamlDocument(list)
	if d != nil && !isYAMLList(list) && !(d.Kind == yaml.ScalarNode && d.Tag == "!!null") {
		return Error[*yaml.Node](fmt.Sprintf("Not a list: %v", yamlRepr(list)))
	}
	out := o.EmptyList()
	if isYAMLList(list) {
		for _, c := range d.Content {
			out.Content = append(out.Content, yamlCloneNode(c))
		}
	}
	out.Content = append(out.Content, yamlCloneNode(value))
	return Success(out)
}

func (o yamlOps) CreateMap(entries []Pair[*yaml.Node, *yaml.Node]) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		if e.First == nil || isYAMLNullLiteral(e.First) {
			continue
		}
		key := yamlCloneNode(e.First)
		if key.Kind != yaml.ScalarNode {
			key = o.CreateString(yamlRepr(key))
		} else if key.Tag != "!!str" {
			key = o.CreateString(key.Value)
		}
		value := e.Second
		if value == nil {
			value = o.Empty()
		}
		m.Content = append(m.Content, key, yamlCloneNode(value))
	}
	return m
}

// isYAMLNullLiteral reports whether a node is a scalar tagged !!null. Map keys
// equal to Go nil are represented in CreateMap's Pair.First as a literal
// nil *yaml.Node; this helper also treats a !!null scalar key as "no key"
// since a mapping cannot sensibly use the null key.
func isYAMLNullLiteral(n *yaml.Node) bool {
	d := yamlDocument(n)
	return d != nil && d.Kind == yaml.ScalarNode && d.Tag == "!!null"
}

func (yamlOps) GetMapEntries(n *yaml.Node) Result[[]Pair[*yaml.Node, *yaml.Node]] {
	if !isYAMLMap(n) {
		return Error[[]Pair[*yaml.Node, *yaml.Node]](fmt.Sprintf("Not a map: %v", yamlRepr(n)))
	}
	d := yamlDocument(n)
	entries := make([]Pair[*yaml.Node, *yaml.Node], 0, len(d.Content)/2)
	for i := 0; i < len(d.Content); i += 2 {
		entries = append(entries, NewPair(yamlCloneNode(d.Content[i]), yamlCloneNode(d.Content[i+1])))
	}
	return Success(entries)
}

func (o yamlOps) MergeToMap(m *yaml.Node, key *yaml.Node, value *yaml.Node) Result[*yaml.Node] {
	base, ok := yamlMapOrEmpty(o, m)
	if !ok {
		return Error[*yaml.Node](fmt.Sprintf("Not a map: %v", yamlRepr(m)))
	}
	if yamlDocument(key) == nil || yamlDocument(key).Tag != "!!str" {
		return Error[*yaml.Node](fmt.Sprintf("key must be a string: %v", yamlRepr(key)))
	}
	result := yamlCloneNode(base)
	result = yamlSetKey(result, key.Value, value)
	return Success(result)
}

func (o yamlOps) MergeMaps(m *yaml.Node, other *yaml.Node) Result[*yaml.Node] {
	base, ok := yamlMapOrEmpty(o, m)
	if !ok {
		return Error[*yaml.Node](fmt.Sprintf("Not a map: %v", yamlRepr(m)))
	}
	if !isYAMLMap(other) {
		return Error[*yaml.Node](fmt.Sprintf("Not a map: %v", yamlRepr(other)))
	}
	result := yamlCloneNode(base)
	od := yamlDocument(other)
	for i := 0; i < len(od.Content); i += 2 {
		result = yamlSetKey(result, od.Content[i].Value, od.Content[i+1])
	}
	return Success(result)
}

func yamlMapOrEmpty(o yamlOps, n *yaml.Node) (*yaml.Node, bool) {
	if isYAMLMap(n) {
		return n, true
	}
	if n == nil || isYAMLNullLiteral(n) {
		return o.EmptyMap(), true
	}
	return nil, false
}

// yamlSetKey returns m with key set to value (cloned), overwriting an
// existing entry or appending a new one. m is mutated in place; callers
// must pass an already-cloned node.
func yamlSetKey(m *yaml.Node, key string, value *yaml.Node) *yaml.Node {
	d := yamlDocument(m)
	clonedValue := yamlCloneNode(value)
	for i := 0; i < len(d.Content); i += 2 {
		if d.Content[i].Value == key {
			d.Content[i+1] = clonedValue
			return m
		}
	}
	d.Content = append(d.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, clonedValue)
	return m
}

func (yamlOps) Get(n *yaml.Node, key string) (*yaml.Node, bool) {
	if !isYAMLMap(n) {
		return nil, false
	}
	d := yamlDocument(n)
	for i := 0; i < len(d.Content); i += 2 {
		if d.Content[i].Value == key {
			return yamlCloneNode(d.Content[i+1]), true
		}
	}
	return nil, false
}

func (o yamlOps) Set(n *yaml.Node, key string, value *yaml.Node) *yaml.Node {
	base, ok := yamlMapOrEmpty(o, n)
	if !ok {
		base = o.EmptyMap()
	}
	result := yamlCloneNode(base)
	return yamlSetKey(result, key, value)
}

func (yamlOps) Remove(n *yaml.Node, key string) *yaml.Node {
	if !isYAMLMap(n) {
		return n
	}
	d := yamlDocument(n)
	result := yamlCloneNode(n)
	rd := yamlDocument(result)
	filtered := rd.Content[:0]
	for i := 0; i < len(d.Content); i += 2 {
		if d.Content[i].Value == key {
			continue
		}
		filtered = append(filtered, yamlCloneNode(d.Content[i]), yamlCloneNode(d.Content[i+1]))
	}
	rd.Content = filtered
	return result
}

func (yamlOps) Has(n *yaml.Node, key string) bool {
	_, ok := YAMLOps.Get(n, key)
	return ok
}
