// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/analoguememory/internal/catalog"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/validation"
)

func newBrowseCmd(opts *options) *cobra.Command {
	var category, query string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List catalog items, optionally filtered",
		Long: `List catalog items filtered by category and a free-text query.

The query matches title, description, category and year, ignoring case.

Examples:
  memoryctl browse                         # Everything
  memoryctl browse --category movies       # One category
  memoryctl browse -q nintendo             # Search
  memoryctl browse -c toys -q 1996 -o yaml # Both, as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				items := catalog.Filter(env.catalog.Items(), env.catalog.Categories(), category, query)
				rows := env.rows(items)
				return render(cmd, opts, rows, func(w io.Writer) {
					printRows(w, rows, "No items match.")
				})
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", models.AllCategoryID, "Category id")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search text")
	return cmd
}

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				cats := env.catalog.Categories()
				return render(cmd, opts, cats, func(w io.Writer) {
					for _, c := range cats {
						fmt.Fprintf(w, "%-12s %s", c.ID, titleColor.Sprint(c.Name))
						if c.Description != "" {
							fmt.Fprintf(w, "  %s", dimColor.Sprint(c.Description))
						}
						fmt.Fprintln(w)
					}
				})
			})
		},
	}
}

// lookup resolves an item id against the loaded catalog.
func (e *cmdEnv) lookup(id string) (models.CatalogItem, error) {
	item, ok := e.catalog.Item(id)
	if !ok {
		return models.CatalogItem{}, fmt.Errorf("no item with id %q", id)
	}
	return item, nil
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item",
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
				row := env.rows([]models.CatalogItem{item})[0]
				return render(cmd, opts, row, func(w io.Writer) { printItem(w, row) })
			})
		},
	}
}

// itemCountRule bounds --limit and --count like the gateway's query params.
const itemCountRule = "min=1,max=50"

func newSimilarCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "similar <id>",
		Short: "List items similar to an item",
		Long: `List items similar to the given one: same category first, closest
year first, topped up from other categories when needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verr := validation.ValidateVar("--limit", limit, itemCountRule); verr != nil {
				return verr
			}
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				item, err := env.lookup(args[0])
				if err != nil {
					return err
				}
				rows := env.rows(catalog.Similar(item, env.catalog.Items(), limit))
				return render(cmd, opts, rows, func(w io.Writer) {
					fmt.Fprintf(w, "Similar to %s:\n", titleColor.Sprint(item.Title))
					printRows(w, rows, "Nothing similar found.")
				})
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", catalog.DefaultSimilarLimit, "Maximum number of items")
	return cmd
}

func newRandomCmd(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick random items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verr := validation.ValidateVar("--count", count, itemCountRule); verr != nil {
				return verr
			}
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				rows := env.rows(catalog.Random(env.catalog.Items(), count, nil))
				return render(cmd, opts, rows, func(w io.Writer) {
					printRows(w, rows, "The catalog is empty.")
				})
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", catalog.DefaultRandomCount, "Number of items")
	return cmd
}
