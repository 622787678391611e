// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package schemadoc

import (
	"github.com/holomush/datafixer/pkg/fixer"
)

// BuildSchemaRegistry registers every VersionEntry in m against r, in
// manifest order (r keeps its versions sorted), giving each version's TypeRegistry an entry per
// declared name (the manifest only needs to say a type exists at that
// version; the fixer layer's own bootstrap fills in whatever per-type
// metadata the application actually wants to carry).
func BuildSchemaRegistry(m *Manifest, r *fixer.SchemaRegistry) error {
	for _, entry := range m.Types {
		types := make(fixer.TypeRegistry, len(entry.Names))
		for _, name := range entry.Names {
			types[fixer.TypeReference(name)] = struct{}{}
		}
		if err := r.Register(fixer.NewSchema(fixer.DataVersion(entry.Version), types)); err != nil {
			return err
		}
	}
	return nil
}
