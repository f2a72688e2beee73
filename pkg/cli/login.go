/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/mchmarny/bloomctl/pkg/auth"
)

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:                  "login",
		EnableShellCompletion: true,
		Usage:                 "Authenticate with the xBloom backend and save the credential",
		Description: `Log in with your xBloom account email and password. On success the
member id and session token are written to the credentials file
(0600 permissions) for use by create and list.

The password is read from the terminal without echo. For
non-interactive use, set it via the --password flag or the
BLOOMCTL_PASSWORD environment variable.

# Examples

Interactive login:
  bloomctl login --email you@example.com

Non-interactive login:
  BLOOMCTL_PASSWORD=... bloomctl login --email you@example.com`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Required: true,
				Usage:    "Account email address",
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Sources: cli.EnvVars("BLOOMCTL_PASSWORD"),
				Usage:   "Account password (prompted when not set)",
			},
			apiURLFlag,
			credentialsFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			email := cmd.String("email")

			password := cmd.String("password")
			if password == "" {
				p, err := promptPassword()
				if err != nil {
					return err
				}
				password = p
			}
			if password == "" {
				return fmt.Errorf("a password is required")
			}

			slog.Info("logging in", "email", email)

			cred, err := newClient(cmd).Login(ctx, email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			path, err := credentialsPath(cmd)
			if err != nil {
				return fmt.Errorf("failed to resolve credentials path: %w", err)
			}

			if err := auth.Save(path, cred); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Printf("Logged in as %s (member %d), credentials saved to %s\n",
				cred.Email, cred.MemberID, path)
			return nil
		},
	}
}

// promptPassword reads a password from the terminal without echo.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal, pass the password via --password or BLOOMCTL_PASSWORD")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// loadCredential loads the saved credential for authenticated commands.
func loadCredential(cmd *cli.Command) (*auth.Credential, error) {
	path, err := credentialsPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve credentials path: %w", err)
	}
	return auth.Load(path)
}
