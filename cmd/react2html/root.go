// Copyright 2026 The React2HTML Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	r2hlog "github.com/davetashner/react2html/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	configFile string
)

// rootCmd converts the component markup and is the base for subcommands.
var rootCmd = &cobra.Command{
	Use:   "react2html",
	Short: "Convert a React component into a static HTML page",
	Long: `react2html sends React component source to a hosted language model,
asks for an equivalent static HTML document with inline CSS, writes it to
index.html, and opens it in your browser.

With no flags it converts the built-in storefront sample using Groq.
The credential is read from GROQ_API_KEY (or ANTHROPIC_API_KEY with
--provider anthropic), from a .env file, or from .react2html.yaml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		r2hlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
		slog.Debug("starting", "version", Version)
	},
	RunE: runConvert,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&configFile, "config", "", "settings file (default: ./.react2html.yaml if present)")

	pf.String("provider", "", "completion provider: groq or anthropic (default groq)")
	pf.String("model", "", "model identifier (default: provider's default)")
	pf.String("base-url", "", "override the provider's API endpoint")
	pf.StringP("input", "i", "", "file containing React component source (default: built-in sample)")
	pf.StringP("output", "o", "", "output HTML file (default index.html)")
	pf.Bool("no-open", false, "do not open the result in the default browser")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
