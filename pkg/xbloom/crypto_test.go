/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package xbloom

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPublicKey(t *testing.T) {
	pub, err := loadPublicKey()
	require.NoError(t, err)
	require.NotNil(t, pub)
	assert.Equal(t, rsaKeyBytes, pub.Size())
}

func TestEncryptChunkedBlockCount(t *testing.T) {
	pub, err := loadPublicKey()
	require.NoError(t, err)

	tests := []struct {
		name      string
		plainLen  int
		numBlocks int
	}{
		{"single byte", 1, 1},
		{"exactly one block", rsaMaxPlainBlock, 1},
		{"one over", rsaMaxPlainBlock + 1, 2},
		{"typical form", 300, 3},
		{"three blocks exact", 3 * rsaMaxPlainBlock, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := encryptChunked(pub, []byte(strings.Repeat("x", tt.plainLen)))
			require.NoError(t, err)
			assert.Len(t, ciphertext, tt.numBlocks*rsaKeyBytes)
		})
	}
}

func TestEncryptFormShape(t *testing.T) {
	body, err := encryptForm(loginForm{
		InterfaceVersion: interfaceVersion,
		Skey:             appKey,
		Email:            "test@example.com",
		Password:         "hunter2",
	})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(body)
	require.NoError(t, err, "body must be standard base64")
	assert.Zero(t, len(raw)%rsaKeyBytes, "ciphertext must be whole blocks")
	assert.NotEmpty(t, raw)
}
