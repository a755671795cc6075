// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/analoguememory/internal/share"
)

// defaultShareBase is used when --url is not given.
const defaultShareBase = "https://analoguememory.app/items/"

func newShareCmd(opts *options) *cobra.Command {
	var platform, pageURL string

	cmd := &cobra.Command{
		Use:   "share <id>",
		Short: "Print share links for an item",
		Long: `Print share links for an item. Without --platform all platforms are
listed; --platform copy prints the text to paste.

Examples:
  memoryctl share 1
  memoryctl share 1 --platform twitter --url https://example.com/items/1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.loadCatalog(cmd.Context()); err != nil {
					return err
				}
				item, err := env.lookup(args[0])
				if err != nil {
					return err
				}
				u := pageURL
				if u == "" {
					u = defaultShareBase + item.ID
				}

				links := make(map[string]string)
				if platform != "" {
					link, err := share.Link(share.Platform(platform), item, u)
					if err != nil {
						return err
					}
					links[platform] = link
				} else {
					for p, link := range share.Links(item, u) {
						links[string(p)] = link
					}
				}

				return render(cmd, opts, links, func(w io.Writer) {
					fmt.Fprintln(w, titleColor.Sprint(share.Title(item)))
					for _, p := range share.Platforms {
						if link, ok := links[string(p)]; ok {
							fmt.Fprintf(w, "  %-9s %s\n", p, link)
						}
					}
				})
			})
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "facebook, twitter, email or copy")
	cmd.Flags().StringVar(&pageURL, "url", "", "Page URL to share")
	return cmd
}
