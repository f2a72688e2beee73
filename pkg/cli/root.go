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
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/bloomctl/pkg/auth"
	"github.com/mchmarny/bloomctl/pkg/logging"
	"github.com/mchmarny/bloomctl/pkg/serializer"
	"github.com/mchmarny/bloomctl/pkg/xbloom"
)

const (
	name           = "bloomctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Shorthand for --format json",
	}

	apiURLFlag = &cli.StringFlag{
		Name:    "api-url",
		Value:   xbloom.DefaultBaseURL,
		Hidden:  true,
		Sources: cli.EnvVars("BLOOMCTL_API_URL"),
		Usage:   "Override the vendor API root",
	}

	credentialsFlag = &cli.StringFlag{
		Name:    "credentials",
		Sources: cli.EnvVars("BLOOMCTL_CREDENTIALS"),
		Usage:   "Path to the credentials file (default: platform config dir)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Author, validate, and share xBloom coffee recipes",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting", "name", name, "version", version, "commit", commit)
			return ctx, nil
		},
		Commands: []*cli.Command{
			loginCmd(),
			templateCmd(),
			createCmd(),
			listCmd(),
			fetchCmd(),
		},
	}
}

// Execute runs the CLI. Called by main.main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat reads and validates the --format flag. The --json
// shorthand wins over --format when both are set.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if cmd.Bool("json") {
		return serializer.FormatJSON, nil
	}
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// newClient builds the API client for a command invocation.
func newClient(cmd *cli.Command) *xbloom.Client {
	return xbloom.New(xbloom.WithBaseURL(cmd.String("api-url")))
}

// credentialsPath resolves the credentials file location, preferring the
// --credentials flag over the platform default.
func credentialsPath(cmd *cli.Command) (string, error) {
	if p := cmd.String("credentials"); p != "" {
		return p, nil
	}
	return auth.DefaultPath()
}

// serialize writes v to the command's --output destination in the
// command's --format.
func serialize(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return w.Serialize(ctx, v)
}
