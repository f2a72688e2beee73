/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/bloomctl/pkg/errors"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	want := &Credential{MemberID: 42, Token: "tok", Email: "a@b.c"}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, Save(path, &Credential{MemberID: 1, Token: "t"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	err := Save(path, &Credential{Token: "t"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnauthorized, errors.CodeOf(err))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnauthorized, errors.CodeOf(err))
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnauthorized, errors.CodeOf(err))
}

func TestLoad_NoMemberID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"t"}`), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnauthorized, errors.CodeOf(err))
}

func TestCredential_IsValid(t *testing.T) {
	assert.False(t, (&Credential{}).IsValid())
	assert.False(t, (*Credential)(nil).IsValid())
	assert.True(t, (&Credential{MemberID: 7}).IsValid())
}
