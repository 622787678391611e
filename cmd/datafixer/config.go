// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/datafixer/internal/xdg"
)

// Config is the datafixer CLI's own configuration, layered from (in
// ascending priority) the optional --config YAML file, then command-line
// flags.
type Config struct {
	DatabaseURL string `koanf:"database_url"`
	MetricsAddr string `koanf:"metrics_addr"`
}

// loadConfig builds a Config from configFile (if set, else the XDG
// default config path, if it exists) overlaid with cmd's own flags,
// following the same file-then-flags layering the teacher's commands
// apply manually per-flag.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	path := configFile
	if path == "" {
		path = defaultConfigPath()
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "merge flags").Wrap(err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "unmarshal").Wrap(err)
	}
	return &cfg, nil
}

// defaultConfigPath returns the XDG config file datafixer reads when
// --config isn't given, or "" if it doesn't exist (not an error: running
// without a config file is normal when everything comes from flags).
func defaultConfigPath() string {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
