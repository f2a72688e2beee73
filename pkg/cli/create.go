/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/bloomctl/pkg/recipe"
	"github.com/mchmarny/bloomctl/pkg/serializer"
)

func createCmd() *cli.Command {
	return &cli.Command{
		Name:                  "create",
		EnableShellCompletion: true,
		Usage:                 "Validate a recipe file and upload it to your account",
		Description: `Load a recipe from a YAML or JSON file, validate it against the
machine's constraints, and upload it to the logged-in account. The
command fails before any network call when the recipe is invalid.

Validation enforces, among other things:
  - grinder size within 1-150, water temperatures within 0-100 C
  - pour volumes, flow rates, and dose all positive
  - at least one pour stage
  - non-original machine model targets that the app would silently
    hide are rejected outright

Use --dry-run to validate without uploading.

# Examples

Validate only:
  bloomctl create --recipe my-recipe.yaml --dry-run

Validate and upload:
  bloomctl create --recipe my-recipe.yaml

Load the recipe over HTTP:
  bloomctl create --recipe https://example.com/recipes/v60.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "recipe",
				Aliases:  []string{"r", "config"},
				Required: true,
				Usage:    "Path or HTTP(S) URL of the recipe file (yaml or json)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Validate the recipe without uploading it",
			},
			outputFlag,
			formatFlag,
			jsonFlag,
			apiURLFlag,
			credentialsFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			recipePath := cmd.String("recipe")

			slog.Info("loading recipe", "uri", recipePath)

			r, err := serializer.FromFile[recipe.Recipe](recipePath)
			if err != nil {
				return fmt.Errorf("failed to load recipe from %q: %w", recipePath, err)
			}

			if err := r.Validate(); err != nil {
				return fmt.Errorf("invalid recipe: %w", err)
			}

			if cmd.Bool("dry-run") {
				fmt.Printf("Recipe %q is valid (%d pour stages, %.0fg dose, %.0fml water)\n",
					r.Name, len(r.PourList), r.Dose, r.TotalWater)
				return nil
			}

			cred, err := loadCredential(cmd)
			if err != nil {
				return err
			}

			slog.Info("uploading recipe", "name", r.Name, "member", cred.MemberID)

			res, err := newClient(cmd).CreateRecipe(ctx, cred, r)
			if err != nil {
				return fmt.Errorf("failed to upload recipe: %w", err)
			}

			return serialize(ctx, cmd, res)
		},
	}
}
