// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package fixermetrics is a fixer.Context implementation that counts
// info/warn diagnostics emitted during a migration, registered against a
// Prometheus registry. It gives the "Actuator/metrics contributors"
// collaborator named as out-of-core in spec.md §1 a concrete, wireable
// shape without pulling Prometheus into pkg/fixer itself.
package fixermetrics
