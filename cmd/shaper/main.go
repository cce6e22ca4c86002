// Package main is the interactive Shaper canvas.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shaper/internal/app"
	"github.com/Faultbox/shaper/internal/config"
	"github.com/Faultbox/shaper/internal/host"
	"github.com/Faultbox/shaper/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shaper ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}

	h, err := host.New(cfg, a)
	if err != nil {
		logger.Error("failed to create host", zap.Error(err))
		os.Exit(1)
	}
	defer h.Close()

	if err := h.Run(); err != nil {
		logger.Error("host error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally", zap.Uint64("frames", a.Frames()))
}
