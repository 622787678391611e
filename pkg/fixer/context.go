// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package fixer

import (
	"fmt"
	"log/slog"
	"sync"
)

// Context is the diagnostics sink threaded through DataFixer.Update and
// every DataFix.Apply: a pure sink with no return value.
type Context interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// silentContext discards every call; used as the default when a caller
// does not supply one.
type silentContext struct{}

// Silent returns the no-op Context.
func Silent() Context { return silentContext{} }

func (silentContext) Info(string, ...any) {}
func (silentContext) Warn(string, ...any) {}

// slogContext writes to a *slog.Logger, the process-level diagnostic sink.
type slogContext struct {
	logger *slog.Logger
}

// Slog wraps logger as a Context, the "system" context of spec.md §4.I.
func Slog(logger *slog.Logger) Context {
	return slogContext{logger: logger}
}

func (c slogContext) Info(format string, args ...any) {
	c.logger.Info(fmt.Sprintf(format, args...))
}

func (c slogContext) Warn(format string, args ...any) {
	c.logger.Warn(fmt.Sprintf(format, args...))
}

// RecordingContext is a test Context that captures every Info/Warn call in
// caller-emitted order, safe for concurrent use.
type RecordingContext struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

// Recording returns a fresh RecordingContext.
func Recording() *RecordingContext {
	return &RecordingContext{}
}

func (r *RecordingContext) Info(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *RecordingContext) Warn(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

// Infos returns every message passed to Info, in call order.
func (r *RecordingContext) Infos() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.infos...)
}

// Warns returns every message passed to Warn, in call order.
func (r *RecordingContext) Warns() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warns...)
}
