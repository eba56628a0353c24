// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/react2html/internal/config"
)

// configCmd prints the settings a conversion would run with.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	Long: `Print the settings react2html would use, after applying defaults,
.env, the settings file, environment variables, and flags.
Credentials are masked.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	dim := color.New(color.Faint)
	source := cfg.Source
	if source == "" {
		source = "defaults and environment"
	}
	_, _ = dim.Fprintf(w, "# source: %s\n", source)

	if err := config.Write(w, cfg); err != nil {
		return fmt.Errorf("react2html: render settings: %w", err)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(w, "# warning: %s is not set\n", cfg.APIKeyEnv())
	}
	return nil
}
