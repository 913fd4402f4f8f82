//go:build !cli

package main

import (
	"fmt"
	"os"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/cli"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/config"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/ui"
)

// run is the GUI+CLI entry point.
// It first checks for CLI subcommands, and if none are found, launches the GUI.
func run() {
	if cli.Execute(version) {
		return
	}

	cfg, err := config.Load(config.DefaultPath())
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if cfg.Logging.File != "" {
		if err := log.EnableFileLogging(cfg.Logging.File, log.ParseLevel(cfg.Logging.Level)); err != nil {
			fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		}
	}

	// The dashboard owns tab state, drops, requests and downloads.
	ui.NewApp(version, cfg).Run()
}
