// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package schemadoc generates and validates the JSON Schema for the
// bootstrap type-registry manifest: the YAML/JSON document an application
// ships declaring, per DataVersion, which TypeReferences exist. It mirrors
// the teacher's plugin-manifest schema pattern, applied to this module's
// own bootstrap document instead of a plugin.yaml.
package schemadoc
