// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package migration_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/datafixer/pkg/dynamic"
	"github.com/holomush/datafixer/pkg/fixer"
	"github.com/holomush/datafixer/pkg/fixerstore"
	"github.com/holomush/datafixer/pkg/rewrite"
	"github.com/holomush/datafixer/pkg/schemadoc"
)

const playerType fixer.TypeReference = "player"

var manifestYAML = []byte(`
schemaVersion: 1
types:
  - version: 1
    names: [player]
  - version: 2
    names: [player]
  - version: 3
    names: [player]
  - version: 4
    names: [player]
`)

var _ = Describe("Manifest-to-ledger migration pipeline", func() {
	var ledger *fixerstore.LedgerStore

	BeforeEach(func() {
		migrator, err := fixerstore.NewMigrator(env.dsn)
		Expect(err).NotTo(HaveOccurred())
		Expect(migrator.Up()).To(Succeed())
		Expect(migrator.Close()).To(Succeed())

		_, err = env.pool.Exec(env.ctx, "DELETE FROM migration_ledger")
		Expect(err).NotTo(HaveOccurred())

		ledger = fixerstore.NewLedgerStore(env.pool)
	})

	It("validates a manifest, builds a DataFixer, applies a chain, and records the ledger", func() {
		m, err := schemadoc.ParseManifest(manifestYAML)
		Expect(err).NotTo(HaveOccurred())

		schemas := fixer.NewSchemaRegistry()
		Expect(schemadoc.BuildSchemaRegistry(m, schemas)).To(Succeed())

		builder := fixer.NewDataFixerBuilder[any](4)
		builder.AddFix(playerType, fixer.NewFix[any]("add-version", 1, 2,
			func(_ fixer.TypeReference, v dynamic.Value[any], _ fixer.Context) (dynamic.Value[any], error) {
				return v.Set("version", dynamic.New(v.Ops, v.Ops.CreateLong(2))), nil
			}))
		builder.AddFix(playerType, fixer.NewFix[any]("rename-xp", 2, 3,
			func(_ fixer.TypeReference, v dynamic.Value[any], _ fixer.Context) (dynamic.Value[any], error) {
				batch := rewrite.NewBatchTransform[any]().Rename("xp", "experience")
				return batch.Apply(v), nil
			}))
		builder.AddFix(playerType, fixer.NewFix[any]("rename-name", 3, 4,
			func(_ fixer.TypeReference, v dynamic.Value[any], _ fixer.Context) (dynamic.Value[any], error) {
				batch := rewrite.NewBatchTransform[any]().Rename("playerName", "name")
				return batch.Apply(v), nil
			}))

		df, err := builder.Build()
		Expect(err).NotTo(HaveOccurred())

		raw, err := dynamic.ParseJSON([]byte(`{"playerName":"Alice","xp":10}`))
		Expect(err).NotTo(HaveOccurred())
		input := dynamic.New(dynamic.JSONOps, raw)

		out, err := df.Update(playerType, input, 1, 4)
		Expect(err).NotTo(HaveOccurred())

		marshaled, err := dynamic.MarshalJSON(out.Raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(marshaled)).To(MatchJSON(`{"name":"Alice","experience":10,"version":2}`))

		Expect(ledger.Record(env.ctx, "doc-alice", playerType, 4)).To(Succeed())

		version, ok, err := ledger.Latest(env.ctx, "doc-alice", playerType)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(version).To(Equal(fixer.DataVersion(4)))
	})
})
