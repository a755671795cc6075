// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/analoguememory/internal/models"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.FgHiBlack)
	ownedColor = color.New(color.FgGreen)
	newColor   = color.New(color.FgYellow, color.Bold)
)

func validateOutput(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(cmd *cobra.Command, opts *options, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch opts.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// itemRow is an item with its collection state, as printed by list commands.
type itemRow struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Category      string `json:"category" yaml:"category"`
	Year          int    `json:"year" yaml:"year"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL      string `json:"imageUrl" yaml:"imageUrl"`
	InCollection  bool   `json:"inCollection" yaml:"inCollection"`
	RecentlyAdded bool   `json:"recentlyAdded,omitempty" yaml:"recentlyAdded,omitempty"`
}

func (e *cmdEnv) rows(items []models.CatalogItem) []itemRow {
	out := make([]itemRow, len(items))
	for i, it := range items {
		out[i] = itemRow{
			ID:            it.ID,
			Title:         it.Title,
			Category:      it.Category,
			Year:          it.Year,
			Description:   it.Description,
			ImageURL:      it.ImageURL,
			InCollection:  e.coll.IsInCollection(it.ID),
			RecentlyAdded: e.coll.IsRecentlyAdded(it.ID),
		}
	}
	return out
}

func printRows(w io.Writer, rows []itemRow, empty string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for _, r := range rows {
		marker := "  "
		if r.InCollection {
			marker = ownedColor.Sprint("* ")
		}
		fmt.Fprintf(w, "%s%s %s %s", marker, dimColor.Sprintf("%4s", r.ID), titleColor.Sprint(r.Title),
			dimColor.Sprintf("(%s, %d)", r.Category, r.Year))
		if r.RecentlyAdded {
			fmt.Fprint(w, " ", newColor.Sprint("new"))
		}
		fmt.Fprintln(w)
	}
}

func printItem(w io.Writer, r itemRow) {
	fmt.Fprintln(w, titleColor.Sprint(r.Title))
	fmt.Fprintf(w, "  %s, %d\n", r.Category, r.Year)
	if r.Description != "" {
		fmt.Fprintf(w, "  %s\n", r.Description)
	}
	fmt.Fprintf(w, "  %s\n", dimColor.Sprint(r.ImageURL))
	if r.InCollection {
		fmt.Fprintln(w, ownedColor.Sprint("  In your collection"))
	}
}
