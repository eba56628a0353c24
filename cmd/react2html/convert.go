// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/react2html/internal/config"
	"github.com/davetashner/react2html/internal/convert"
	"github.com/davetashner/react2html/internal/sample"
	"github.com/davetashner/react2html/internal/sink"
)

// loadConfig resolves settings for cmd from the working directory, the
// --config file, and the flags the user changed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.Options{
		Dir:   ".",
		File:  configFile,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return nil, exitError(ExitConfig, "load settings", err)
	}
	return cfg, nil
}

// runConvert is the whole program: build prompt, call the service once,
// validate, write, open. Nothing is written unless validation succeeds.
func runConvert(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return exitError(ExitConfig, "missing credential", err)
	}

	input := sample.ReactApp
	if cfg.Input != "" {
		data, err := cmdFS.ReadFile(cfg.Input)
		if err != nil {
			return exitError(ExitConfig, "read input", err)
		}
		input = string(data)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return exitError(ExitConfig, "create provider", err)
	}

	slog.Info("converting", "provider", cfg.Provider, "model", cfg.Model, "input_bytes", len(input))
	result, err := convert.New(provider, cfg.Model).Convert(ctx, input)
	if err != nil {
		if errors.Is(err, convert.ErrValidation) {
			return exitError(ExitValidation, "unexpected response", err)
		}
		return exitError(ExitTransport, "completion request failed", err)
	}

	if err := sink.WriteFile(cmdFS, cfg.Output, result.HTMLCode); err != nil {
		return exitError(ExitFilesystem, "write output", err)
	}

	green := color.New(color.FgGreen)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes)\n", green.Sprint("wrote"), cfg.Output, len(result.HTMLCode))

	if cfg.Open {
		viewer := sink.NewViewer(cmdOpener, cmdFS)
		if err := viewer.Open(cfg.Output); err != nil {
			slog.Warn("could not open browser", "path", cfg.Output, "error", err)
		}
	}
	return nil
}
