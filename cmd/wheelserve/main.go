// Command wheelserve serves an interactive prize wheel over WebSocket.
//
// Clients connect to /ws, send JSON commands (spin, spinto, spintoitem,
// stop, dragstart, dragmove, dragend) and receive rotation frames plus
// spin/rest/index-change notifications. The wheel itself lives on a
// single goroutine driven by a frame ticker; client readers only feed
// commands into that goroutine, preserving the engine's single-threaded
// ownership model.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gogpu/wheel"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "listen address")
		configPath = flag.String("config", "", "wheel YAML description (uses a built-in demo wheel if empty)")
		update     = flag.Duration("update", 16*time.Millisecond, "frame broadcast interval")
		logLevel   = flag.String("log-level", "info", "log level: error, warn, info or debug")
	)
	flag.Parse()

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		slog.Error("invalid -log-level", "error", err)
		os.Exit(2)
	}
	logger := setupLogger(level)
	slog.SetDefault(logger)
	wheel.SetLogger(logger)

	w, err := buildWheel(*configPath)
	if err != nil {
		logger.Error("failed to build wheel", "error", err)
		os.Exit(1)
	}

	srv := newServer(w, *update, logger)
	go srv.run()

	http.HandleFunc("/ws", srv.handleWS)

	logger.Info("wheelserve listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func buildWheel(configPath string) (*wheel.Wheel, error) {
	if configPath != "" {
		cfg, err := wheel.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.Wheel()
	}
	return wheel.New(wheel.WithItems([]wheel.Item{
		{Label: "Gold", Weight: 1},
		{Label: "Silver", Weight: 2},
		{Label: "Bronze", Weight: 3},
		{Label: "Nothing", Weight: 6},
	}))
}
