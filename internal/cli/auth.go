// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tomtom215/analoguememory/internal/models"
)

var errOffline = errors.New("not available with --offline")

func newLoginCmd(opts *options) *cobra.Command {
	var email, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the memory API",
		Long: `Sign in to the memory API. With --remember (the default) the session
is kept in local state and reused by later commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if env.sessions == nil {
					return errOffline
				}
				user, err := env.sessions.Login(cmd.Context(), models.LoginCredentials{Email: email, Password: password}, remember)
				if err != nil {
					return err
				}
				return render(cmd, opts, user, func(w io.Writer) {
					fmt.Fprintf(w, "Signed in as %s\n", titleColor.Sprint(displayName(*user)))
				})
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&remember, "remember", true, "Keep the session after this command exits")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if env.sessions == nil {
					return errOffline
				}
				if err := env.sessions.Logout(); err != nil {
					return err
				}
				return render(cmd, opts, map[string]bool{"authenticated": false}, func(w io.Writer) {
					fmt.Fprintln(w, "Signed out")
				})
			})
		},
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, opts, func(env *cmdEnv) error {
				if env.sessions == nil {
					return errOffline
				}
				user, ok := env.sessions.User()
				if !ok || !env.sessions.IsAuthenticated() {
					return errors.New("not signed in")
				}
				return render(cmd, opts, user, func(w io.Writer) {
					fmt.Fprintf(w, "%s <%s>\n", titleColor.Sprint(displayName(user)), user.Email)
				})
			})
		},
	}
}

func displayName(u models.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
