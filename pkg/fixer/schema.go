// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"sort"
	"sync"
	"sync/atomic"
)

// TypeRegistry maps a TypeReference to an opaque per-version type
// descriptor (in practice, application-defined: a codec.Codec, a struct
// tag set, or any other value the application chooses to associate with a
// TypeReference at a given schema version).
type TypeRegistry map[TypeReference]any

// Schema bundles a DataVersion with a TypeRegistry and an optional parent
// schema, giving incremental inheritance: Get first checks this schema's
// own registry, then walks up Parent.
type Schema struct {
	Version DataVersion
	Parent  *Schema
	Types   TypeRegistry
}

// NewSchema builds a Schema with no parent.
func NewSchema(version DataVersion, types TypeRegistry) *Schema {
	return &Schema{Version: version, Types: types}
}

// WithParent returns a copy of s with parent set, for incremental schemas
// that reuse a prior version's registry and override specific entries.
func (s *Schema) WithParent(parent *Schema) *Schema {
	return &Schema{Version: s.Version, Parent: parent, Types: s.Types}
}

// Get resolves ref against this schema's own registry, falling back to
// Parent (and its ancestors) if not found locally.
func (s *Schema) Get(ref TypeReference) (any, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if v, ok := cur.Types[ref]; ok {
			return v, true
		}
	}
	return nil, false
}

// SchemaRegistry is a version-ordered catalog of Schemas with floor-lookup
// semantics: Get(v) returns the schema registered at the greatest version
// <= v. Registration is single-goroutine by contract; Freeze makes the
// registry safe for unsynchronized concurrent reads thereafter.
type SchemaRegistry struct {
	mu     sync.Mutex
	byVer  map[DataVersion]*Schema
	sorted []DataVersion
	frozen atomic.Bool
}

// NewSchemaRegistry returns an empty, unfrozen registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{byVer: make(map[DataVersion]*Schema)}
}

// Register adds schema keyed by its own Version.
func (r *SchemaRegistry) Register(schema *Schema) error {
	return r.RegisterAt(schema.Version, schema)
}

// RegisterAt adds schema keyed by version, asserting version == schema.Version.
func (r *SchemaRegistry) RegisterAt(version DataVersion, schema *Schema) error {
	if version != schema.Version {
		return ArgumentError("schema version mismatch",
			"expected_version", int64(version), "schema_version", int64(schema.Version))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return SchemaError("cannot register schema: registry is frozen", "version", int64(version))
	}
	if _, exists := r.byVer[version]; !exists {
		r.sorted = append(r.sorted, version)
		sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i] < r.sorted[j] })
	}
	r.byVer[version] = schema
	return nil
}

// Get returns the schema registered at the greatest version <= v.
func (r *SchemaRegistry) Get(v DataVersion) (*Schema, bool) {
	// sorted/byVer are append-only pre-freeze (single-goroutine by
	// contract) and read-only post-freeze, so no lock is needed here.
	idx := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] > v })
	if idx == 0 {
		return nil, false
	}
	return r.byVer[r.sorted[idx-1]], true
}

// Require is like Get but returns a SchemaError when no schema floors v.
func (r *SchemaRegistry) Require(v DataVersion) (*Schema, error) {
	s, ok := r.Get(v)
	if !ok {
		return nil, SchemaError("no schema registered at or below version", "version", int64(v))
	}
	return s, nil
}

// Latest returns the schema at the highest registered version.
func (r *SchemaRegistry) Latest() (*Schema, bool) {
	if len(r.sorted) == 0 {
		return nil, false
	}
	return r.byVer[r.sorted[len(r.sorted)-1]], true
}

// IsEmpty reports whether no schema has been registered.
func (r *SchemaRegistry) IsEmpty() bool { return len(r.sorted) == 0 }

// Freeze forbids further registration. Idempotent.
func (r *SchemaRegistry) Freeze() { r.frozen.Store(true) }

// IsFrozen reports whether Freeze has been called.
func (r *SchemaRegistry) IsFrozen() bool { return r.frozen.Load() }

// All returns every registered schema, ascending by version.
func (r *SchemaRegistry) All() []*Schema {
	out := make([]*Schema, len(r.sorted))
	for i, v := range r.sorted {
		out[i] = r.byVer[v]
	}
	return out
}

// Versions returns every registered version, ascending.
func (r *SchemaRegistry) Versions() []DataVersion {
	return append([]DataVersion(nil), r.sorted...)
}
