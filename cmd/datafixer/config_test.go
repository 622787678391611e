// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigPath_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.Empty(t, defaultConfigPath())
}

func TestDefaultConfigPath_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "datafixer")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	path := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: postgres://x\n"), 0o600))

	assert.Equal(t, path, defaultConfigPath())
}

func TestLoadConfig_NoConfigFileIsNotAnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	configFile = ""
	t.Cleanup(func() { configFile = "" })

	cmd := newLedgerShowCmd()
	cfg, err := loadConfig(cmd)

	require.NoError(t, err)
	assert.Empty(t, cfg.DatabaseURL)
}
