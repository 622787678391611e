// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/datafixer/pkg/fixermetrics"
)

// NewServeCmd creates the "serve" command, which runs the Prometheus
// metrics server a long-running fixer deployment exposes alongside its
// migration work.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Prometheus metrics for a fixer deployment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.MetricsAddr
			}
			if addr == "" {
				addr = ":9090"
			}

			srv := fixermetrics.NewServer(addr)
			if err := srv.Start(); err != nil {
				return oops.Code("SERVE_START_FAILED").Wrap(err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				slog.Info("datafixer: shutting down metrics server")
				cancel()
			}()

			<-ctx.Done()
			return srv.Stop(context.Background())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to bind the metrics server to (overrides config metrics_addr)")
	return cmd
}
