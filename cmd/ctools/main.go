// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Ctools serves a small collection of web-based developer utilities.
//
// Usage:
//
//	ctools [-addr host:port] [-config file.yaml] [-context n] [-v]
//
// Flags override values from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cahyasetya/tools/internal/web"
)

// drainTimeout bounds how long shutdown waits for in-flight requests.
const drainTimeout = 5 * time.Second

func main() {
	var (
		addr         = flag.String("addr", web.DefaultAddr, "listen `address`")
		configPath   = flag.String("config", "", "optional YAML config `file`")
		contextLines = flag.Int("context", web.DefaultContextLines, "number of context `lines` in JSON diffs")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := web.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = web.LoadConfig(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	// Flags that were set explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "context":
			cfg.ContextLines = *contextLines
		}
	})
	cfg.Logger = logger

	if err := run(context.Background(), cfg); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg web.Config) error {
	srv, err := web.NewServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:              srv.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		cfg.Logger.Info("serving", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	cfg.Logger.Info("shutting down")
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("failed to drain connections: %w", err)
	}
	return <-errc
}
