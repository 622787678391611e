// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package fixerstore is an audit ledger recording, per deployment, which
// (TypeReference, DataVersion) a document was last migrated to. It is a
// collaborator outside the fixer core (the core itself never persists
// data), wired up the way an application's own bootstrap chooses to use
// it — fixer.Context implementations and the ledger are independent,
// optional pieces a caller assembles around DataFixer.
package fixerstore
