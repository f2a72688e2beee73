// Package cli implements the command-line interface for the bloomctl tool.
//
// # Overview
//
// bloomctl authors, validates, and shares recipes for xBloom coffee
// machines. It talks to the same backend the vendor's mobile app uses,
// so recipes created here show up in the app, and links shared from the
// app resolve here.
//
// # Commands
//
// login - Authenticate and save the credential:
//
//	bloomctl login --email you@example.com
//
// Logs in with email and password (prompted without echo) and saves the
// member id and session token to the platform config directory.
//
// template - Generate a starter recipe:
//
//	bloomctl template --output my-recipe.yaml
//
// Writes a valid two-pour starter recipe to edit and upload.
//
// create - Validate and upload a recipe:
//
//	bloomctl create --recipe my-recipe.yaml [--dry-run]
//
// Loads a recipe from a YAML or JSON file (or HTTP URL), validates it
// against the machine's constraints, and uploads it. --dry-run stops
// after validation.
//
// list - List your recipes:
//
//	bloomctl list [--page N]
//
// fetch - Resolve share links:
//
//	bloomctl fetch LINK [LINK...]
//
// Resolves share-h5.xbloom.com links (or bare tokens) to the recipes
// they name. Requires no login; multiple links resolve concurrently.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--json         Shorthand for --format json
//	--log-level    Log verbosity: debug, info, warn, error (default: warn)
//
// # Environment Variables
//
//	LOG_LEVEL             Log verbosity
//	BLOOMCTL_PASSWORD     Account password for non-interactive login
//	BLOOMCTL_CREDENTIALS  Credentials file path override
//	BLOOMCTL_API_URL      Vendor API root override
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid recipe, malformed link, API failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to
// specialized packages:
//   - pkg/recipe - Recipe model, validation, wire conversion
//   - pkg/sharelink - Share-link token extraction and codec
//   - pkg/xbloom - Vendor API client
//   - pkg/auth - Credential persistence
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/bloomctl/pkg/cli.version=1.0.0'"
package cli
