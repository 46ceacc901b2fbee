// Package main is the entry point for the Invoker scene demo.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/config"
	"github.com/Faultbox/invoker/internal/game"
	"github.com/Faultbox/invoker/internal/logger"
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

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	logger.Info("=== Invoker ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		fatal(cfg, "failed to start", err)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		g.Close()
		fatal(cfg, "game error", err)
	}

	logger.Info("game closed normally")
}

// fatal logs err, reports it to the user and exits.
func fatal(cfg *config.Config, msg string, err error) {
	logger.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	if cfg.Game.ErrorDialog {
		dialog.Message("%s:\n\n%v", msg, err).Title(game.Title).Error()
	}
	logger.Sync()
	os.Exit(1)
}
