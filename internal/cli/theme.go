// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/analoguememory/internal/theme"
)

type themeView struct {
	Mode     theme.Mode   `json:"mode" yaml:"mode"`
	Resolved theme.Mode   `json:"resolved" yaml:"resolved"`
	Colors   theme.Colors `json:"colors" yaml:"colors"`
}

func newThemeView(mode theme.Mode, systemDark bool) themeView {
	resolved := theme.Resolve(mode, systemDark)
	return themeView{Mode: mode, Resolved: resolved, Colors: theme.Palette(resolved)}
}

func newThemeCmd(opts *options) *cobra.Command {
	var systemDark bool

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the theme preference",
	}
	cmd.PersistentFlags().BoolVar(&systemDark, "system-dark", false, "Treat the system preference as dark")

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the theme preference and palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				v := newThemeView(env.theme.Preference(), systemDark)
				return render(cmd, opts, v, func(w io.Writer) {
					fmt.Fprintf(w, "%s (resolves to %s)\n", titleColor.Sprint(v.Mode), v.Resolved)
					fmt.Fprintf(w, "  primary    %s\n  background %s\n  text       %s\n",
						v.Colors.Primary, v.Colors.Background, v.Colors.Text)
				})
			})
		},
	}

	set := &cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Change the theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if err := env.theme.SetPreference(mode); err != nil {
					return err
				}
				v := newThemeView(mode, systemDark)
				return render(cmd, opts, v, func(w io.Writer) {
					fmt.Fprintf(w, "Theme set to %s\n", titleColor.Sprint(mode))
				})
			})
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}
