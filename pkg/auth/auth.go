/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mchmarny/bloomctl/pkg/errors"
)

const (
	credentialDirName  = "bloomctl"
	credentialFileName = "credentials.json"
)

// Credential is a logged-in session: the member id is the real identity
// the backend authorizes against, the token accompanies encrypted calls.
type Credential struct {
	MemberID int64  `json:"memberId"`
	Token    string `json:"token"`
	Email    string `json:"email,omitempty"`
}

// IsValid reports whether the credential carries a usable identity.
func (c *Credential) IsValid() bool {
	return c != nil && c.MemberID > 0
}

// DefaultPath returns the credential file location under the user config
// directory (e.g. ~/.config/bloomctl/credentials.json).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, credentialDirName, credentialFileName), nil
}

// Save persists the credential to path with 0600 permissions, creating
// parent directories as needed.
func Save(path string, c *Credential) error {
	if !c.IsValid() {
		return errors.New(errors.ErrCodeUnauthorized, "refusing to save credential without a member id")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create credential dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}

// Load reads the credential from path. A missing or unreadable file, or
// a file without a member id, returns an UNAUTHORIZED structured error
// so callers can tell "not logged in" apart from transport failures.
func Load(path string) (*Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnauthorized, "not logged in (run 'bloomctl login' first)", err)
	}

	var c Credential
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnauthorized, "credential file is corrupt (run 'bloomctl login' again)", err)
	}

	if !c.IsValid() {
		return nil, errors.New(errors.ErrCodeUnauthorized, "credential file has no member id (run 'bloomctl login' again)")
	}

	return &c, nil
}
