// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixerstore

import "github.com/samber/oops"

const codeStoreError = "DATAFIXER_STORE_ERROR"

// StoreError wraps cause (if non-nil) or builds a fresh error from msg,
// tagged with the ledger's own error code so callers can branch on it the
// same way pkg/fixer's taxonomy lets them branch on DATAFIXER_* codes.
func StoreError(msg string, cause error, kv ...any) error {
	b := oops.Code(codeStoreError).With(kv...)
	if cause != nil {
		return b.Wrapf(cause, "%s", msg)
	}
	return b.Errorf("%s", msg)
}
