// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCollectionCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Manage your personal collection",
	}
	cmd.AddCommand(
		newCollectionListCmd(opts),
		newCollectionAddCmd(opts),
		newCollectionRemoveCmd(opts),
	)
	return cmd
}

func newCollectionListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List owned items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				rows := env.rows(env.coll.Items(env.catalog.Items()))
				return render(cmd, opts, rows, func(w io.Writer) {
					printRows(w, rows, "Your collection is empty.")
					if missing := env.coll.Len() - len(rows); missing > 0 {
						fmt.Fprintln(w, dimColor.Sprintf("(%d owned items are not in the current catalog)", missing))
					}
				})
			})
		},
	}
}

func newCollectionAddCmd(opts *options) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add an item to your collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				item, err := env.lookup(args[0])
				if err != nil {
					return err
				}
				env.coll.Add(item.ID)
				synced := env.mirror(cmd, func(ctx context.Context) error {
					return env.remote.AddToCollection(ctx, item.ID, notes)
				})
				return render(cmd, opts, map[string]interface{}{"id": item.ID, "added": true, "synced": synced}, func(w io.Writer) {
					fmt.Fprintf(w, "Added %s to your collection\n", titleColor.Sprint(item.Title))
				})
			})
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Personal note (stored on the server when signed in)")
	return cmd
}

func newCollectionRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item from your collection",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				id := args[0]
				owned := env.coll.IsInCollection(id)
				env.coll.Remove(id)
				synced := env.mirror(cmd, func(ctx context.Context) error {
					return env.remote.RemoveFromCollection(ctx, id)
				})
				return render(cmd, opts, map[string]interface{}{"id": id, "removed": owned, "synced": synced}, func(w io.Writer) {
					if owned {
						fmt.Fprintf(w, "Removed %s from your collection\n", id)
					} else {
						fmt.Fprintf(w, "%s was not in your collection\n", id)
					}
				})
			})
		},
	}
}

// mirror replays a collection change on the server when signed in. A
// failure is reported on stderr; the local change stands.
func (e *cmdEnv) mirror(cmd *cobra.Command, fn func(context.Context) error) bool {
	if !e.signedIn() {
		return false
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), e.timeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: server not updated: %v\n", err)
		return false
	}
	return true
}
