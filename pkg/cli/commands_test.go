// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/bloomctl/pkg/auth"
	"github.com/mchmarny/bloomctl/pkg/recipe"
	"github.com/mchmarny/bloomctl/pkg/serializer"
	"github.com/mchmarny/bloomctl/pkg/sharelink"
)

// runRoot executes the root command with the given args, as main would.
func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	return rootCmd().Run(t.Context(), append([]string{name}, args...))
}

func writeRecipeFile(t *testing.T, r *recipe.Recipe) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := serializer.NewWriter(serializer.FormatYAML, f)
	require.NoError(t, w.Serialize(t.Context(), r))
	require.NoError(t, f.Close())
	return path
}

func writeCredentials(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, auth.Save(path, &auth.Credential{
		MemberID: 42,
		Token:    "session-token",
		Email:    "test@example.com",
	}))
	return path
}

func TestTemplateCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "starter.yaml")

	require.NoError(t, runRoot(t, "template", "--output", out))

	got, err := serializer.FromFile[recipe.Recipe](out)
	require.NoError(t, err)
	assert.Equal(t, recipe.Template(), got)
	require.NoError(t, got.Validate())
}

func TestCreateCommandDryRun(t *testing.T) {
	path := writeRecipeFile(t, recipe.Template())

	require.NoError(t, runRoot(t, "create", "--recipe", path, "--dry-run"))
}

func TestCreateCommandRejectsInvalid(t *testing.T) {
	bad := recipe.Template()
	bad.GrinderSize = 500
	path := writeRecipeFile(t, bad)

	err := runRoot(t, "create", "--recipe", path, "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipe")
}

func TestCreateCommandUploads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "tuRecipeAdd.tuhtml"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","tableId":777,"theVersion":1}`))
	}))
	t.Cleanup(srv.Close)

	path := writeRecipeFile(t, recipe.Template())
	out := filepath.Join(t.TempDir(), "result.yaml")

	require.NoError(t, runRoot(t, "create",
		"--recipe", path,
		"--credentials", writeCredentials(t),
		"--api-url", srv.URL+"/",
		"--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "777")
}

func TestCreateCommandRequiresLogin(t *testing.T) {
	path := writeRecipeFile(t, recipe.Template())
	missing := filepath.Join(t.TempDir(), "nope.json")

	err := runRoot(t, "create", "--recipe", path, "--credentials", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "tuMyTeaRecipeCreated.tuhtml"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"result": "success",
			"list":   []any{recipe.ToWire(recipe.Template())},
		}))
	}))
	t.Cleanup(srv.Close)

	out := filepath.Join(t.TempDir(), "recipes.json")

	require.NoError(t, runRoot(t, "list",
		"--credentials", writeCredentials(t),
		"--api-url", srv.URL+"/",
		"--format", "json",
		"--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), recipe.Template().Name)
}

func TestFetchCommand(t *testing.T) {
	token := sharelink.EncodeToken([]byte("0123456789abcdef"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "RecipeDetail.html"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"result":          "success",
			"shareMemberName": "Ada",
			"recipeVo":        recipe.ToWire(recipe.Template()),
		}))
	}))
	t.Cleanup(srv.Close)

	out := filepath.Join(t.TempDir(), "shared.yaml")

	require.NoError(t, runRoot(t, "fetch",
		"--api-url", srv.URL+"/",
		"--output", out,
		sharelink.ShareURL(token)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada")
}

func TestFetchCommandRejectsMalformedLink(t *testing.T) {
	err := runRoot(t, "fetch", "https://share-h5.xbloom.com/?wrong=param")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad share link")
}

func TestFetchCommandRequiresArgs(t *testing.T) {
	err := runRoot(t, "fetch")
	require.Error(t, err)
}
