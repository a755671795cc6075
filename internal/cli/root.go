// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package cli implements memoryctl, the terminal client for Analogue Memory.
package cli

import (
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	output  string
	dataDir string
	offline bool
}

// NewRootCmd builds the memoryctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "memoryctl",
		Short: "Browse the nostalgia catalog and manage your collection",
		Long: `memoryctl browses the Analogue Memory catalog, ranks similar items,
builds share links and manages your personal collection from the terminal.

The catalog is loaded from the memory API (API_URL). When the API is
unreachable the built-in catalog is used. Collection, theme and sign-in
state are stored locally in BadgerDB.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, json or yaml")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory for local state (default: storage.path from config)")
	root.PersistentFlags().BoolVar(&opts.offline, "offline", false, "Use the built-in catalog and never contact the API")

	root.AddCommand(
		newBrowseCmd(opts),
		newCategoriesCmd(opts),
		newShowCmd(opts),
		newSimilarCmd(opts),
		newRandomCmd(opts),
		newShareCmd(opts),
		newCollectionCmd(opts),
		newThemeCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
