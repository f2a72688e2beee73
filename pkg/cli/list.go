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
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List the recipes you have created",
		Description: `Fetch the recipes the logged-in account has created, one page at a
time, and print them in the selected format.

# Examples

List your recipes:
  bloomctl list

Save them as JSON:
  bloomctl list --format json --output recipes.json`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "page",
				Aliases: []string{"p"},
				Value:   1,
				Usage:   "Result page to fetch",
			},
			outputFlag,
			formatFlag,
			jsonFlag,
			apiURLFlag,
			credentialsFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cred, err := loadCredential(cmd)
			if err != nil {
				return err
			}

			page := int(cmd.Int("page"))
			slog.Info("listing recipes", "member", cred.MemberID, "page", page)

			recipes, err := newClient(cmd).ListRecipes(ctx, cred, page)
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}

			if len(recipes) == 0 {
				fmt.Println("No recipes found.")
				return nil
			}

			return serialize(ctx, cmd, recipes)
		},
	}
}
