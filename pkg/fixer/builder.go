// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

// FixRegistrar is the registration-time interface a DataFixerBootstrap
// writes fixes through, independent of the concrete builder implementing
// it.
type FixRegistrar interface {
	Register(typeRef TypeReference, fix Fix) error
	RegisterAll(typeRef TypeReference, fixes ...Fix) error
}

// DataFixerBuilder accumulates fixes for one backing format T and produces
// a frozen, immutable DataFixer[T] via Build.
type DataFixerBuilder[T any] struct {
	currentVersion DataVersion
	registry       *DataFixRegistry
	defaultCtx     Context
}

// NewDataFixerBuilder starts an empty builder bound to currentVersion.
func NewDataFixerBuilder[T any](currentVersion DataVersion) *DataFixerBuilder[T] {
	return &DataFixerBuilder[T]{
		currentVersion: currentVersion,
		registry:       NewDataFixRegistry(),
		defaultCtx:     Silent(),
	}
}

// AddFix registers fix under typeRef, chaining for fluent construction.
// Panics if the registry has already been frozen by Build, which only
// happens if a builder is reused after construction — a programmer error.
func (b *DataFixerBuilder[T]) AddFix(typeRef TypeReference, fix Fix) *DataFixerBuilder[T] {
	if err := b.Register(typeRef, fix); err != nil {
		panic(err)
	}
	return b
}

// AddFixes registers every fix in fixes under typeRef, in order.
func (b *DataFixerBuilder[T]) AddFixes(typeRef TypeReference, fixes ...Fix) *DataFixerBuilder[T] {
	if err := b.RegisterAll(typeRef, fixes...); err != nil {
		panic(err)
	}
	return b
}

// WithDefaultContext sets the Context used by DataFixer.Update (the
// no-context overload); defaults to Silent().
func (b *DataFixerBuilder[T]) WithDefaultContext(ctx Context) *DataFixerBuilder[T] {
	b.defaultCtx = ctx
	return b
}

// Register implements FixRegistrar.
func (b *DataFixerBuilder[T]) Register(typeRef TypeReference, fix Fix) error {
	return b.registry.Add(typeRef, fix)
}

// RegisterAll implements FixRegistrar.
func (b *DataFixerBuilder[T]) RegisterAll(typeRef TypeReference, fixes ...Fix) error {
	return b.registry.AddAll(typeRef, fixes...)
}

// Build freezes the accumulated registry and returns the resulting
// DataFixer. The builder must not be reused afterward.
func (b *DataFixerBuilder[T]) Build() (*DataFixer[T], error) {
	b.registry.Freeze()
	return &DataFixer[T]{currentVersion: b.currentVersion, registry: b.registry, defaultCtx: b.defaultCtx}, nil
}

// DataFixerBootstrap splits bootstrap-time registration into its two
// concerns, each independently testable: schema catalog construction and
// fix registration.
type DataFixerBootstrap interface {
	RegisterSchemas(*SchemaRegistry) error
	RegisterFixes(FixRegistrar) error
}

// NewRuntime runs bootstrap against fresh registries, freezes both, and
// returns the resulting DataFixer alongside the frozen SchemaRegistry — the
// DataFixerRuntimeFactory helper of spec.md §4.J.
func NewRuntime[T any](currentVersion DataVersion, bootstrap DataFixerBootstrap) (*DataFixer[T], *SchemaRegistry, error) {
	schemas := NewSchemaRegistry()
	builder := NewDataFixerBuilder[T](currentVersion)

	if err := bootstrap.RegisterSchemas(schemas); err != nil {
		return nil, nil, err
	}
	if err := bootstrap.RegisterFixes(builder); err != nil {
		return nil, nil, err
	}
	schemas.Freeze()

	df, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}
	return df, schemas, nil
}
