// Copyright 2025 The Lingvo Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the lingvo lookup service.

Lingvo answers questions about Russian adjectives and adverbs: given a word it
finds the dictionary headword with the same ending and generates every case,
gender, short and comparative form from that headword's schema. Words missing
from the dictionary are inflected after their nearest neighbour in suffix
order.

# Usage

Start the IPC server with the dictionaries named in the config file:

	lingvo

Serve the JSON API over HTTP instead:

	lingvo -http :8080

Run in CLI mode for interactive testing:

	lingvo -c -d

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run under the user config directory:

	[dict]
	adjectives = "data/adjectives.tsv"
	adverbs = "data/adverbs.tsv"
	encoding = "utf-8"

	[server]
	max_limit = 64
	max_word_len = 48
	cache_size = 1024

	[http]
	addr = ":8080"
	allowed_origins = ["*"]

Relative dictionary paths are resolved against the working directory, the
executable directory and the config directory, in that order.

# IPC Protocol

The server reads MessagePack requests from stdin and writes one response per
request to stdout. The first message it sends is {"status": "ready"}.

	{"id": "1", "a": "similar", "k": "adjective", "w": "прекрасный"}
	{"id": "2", "a": "complete", "w": "крас", "l": 5}
	{"id": "3", "a": "stats"}

Logs always go to stderr.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/lingvo/internal/cli"
	"github.com/bastiangx/lingvo/internal/logger"
	"github.com/bastiangx/lingvo/pkg/config"
	"github.com/bastiangx/lingvo/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "lingvo"
	gh      = "https://github.com/bastiangx/lingvo"
)

// sigHandler watches for SIGINT and SIGTERM. With graceful set the first
// signal cancels the returned context so the HTTP server can drain; otherwise,
// and on a second signal, the process exits.
func sigHandler(graceful bool) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go handleSignals(c, cancel, os.Exit, graceful)
	return ctx
}

func handleSignals(c <-chan os.Signal, cancel context.CancelFunc, exit func(int), graceful bool) {
	<-c
	fmt.Fprintf(os.Stderr, "\nExiting...\n")
	cancel()
	if !graceful {
		exit(0)
		return
	}
	<-c
	exit(1)
}

func showVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ Lingvo ] Russian adjective and adverb forms")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

func main() {
	versionFlag := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	httpAddr := flag.String("http", "", "Serve the JSON API on this address instead of IPC (\"config\" uses the config value)")
	configPath := flag.String("config", "", "Path to a custom config file")
	limit := flag.Int("limit", 0, "Number of results in CLI mode (default from config)")
	flag.Parse()

	ctx := sigHandler(*httpAddr != "" && !*cliMode)

	if *versionFlag {
		showVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	cfg, source := config.LoadConfigWithPriority(*configPath)
	activeConfig := config.GetActiveConfigPath(source)
	log.Debugf("Using config: (%s)", activeConfig)

	start := time.Now()
	engine, err := server.LoadEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to load dictionaries: %v", err)
	}
	stats := engine.Stats()
	log.Debug("Dictionaries loaded",
		"adjectives", stats["adjectives"],
		"schemas", stats["schemas"],
		"adverbs", stats["adverbs"],
		"took", time.Since(start))

	if *cliMode {
		if *limit <= 0 {
			*limit = cfg.CLI.DefaultLimit
		}
		cliLogger := logger.Quiet("cli")
		if *debugMode {
			cliLogger = log.Default()
		}
		handler := cli.NewInputHandler(engine, os.Stdin, os.Stdout, cliLogger, *limit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *httpAddr != "" {
		addr := *httpAddr
		if addr == "config" {
			addr = cfg.HTTP.Addr
		}
		if err := serveHTTP(ctx, engine, addr, cfg.HTTP.AllowedOrigins); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(activeConfig)
	srv := server.NewServer(engine, os.Stdin, os.Stdout, logger.New("ipc"))
	if err := srv.Start(); err != nil {
		log.Fatalf("IPC server error: %v", err)
	}
}

func serveHTTP(ctx context.Context, engine *server.Engine, addr string, origins []string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHTTPHandler(engine, origins, logger.New("http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// showStartupInfo prints a short banner to stderr.
func showStartupInfo(configPath string) {
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("config: ( %s )", configPath)
	log.Info("status: ready")
}
