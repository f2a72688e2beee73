/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/bloomctl/pkg/recipe"
)

func templateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "template",
		EnableShellCompletion: true,
		Usage:                 "Generate a starter recipe to edit",
		Description: `Write a valid starter recipe (a two-pour XPOD pour-over) that can be
edited and uploaded with create.

# Examples

Write the starter recipe to a file:
  bloomctl template --output my-recipe.yaml

Print as JSON:
  bloomctl template --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return serialize(ctx, cmd, recipe.Template())
		},
	}
}
