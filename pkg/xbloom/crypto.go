/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package xbloom

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
)

// Vendor RSA public key (1024-bit, X.509 SubjectPublicKeyInfo DER,
// base64), extracted from the vendor client. All authenticated request
// bodies are encrypted against it.
const rsaPublicKeyB64 = "MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQC4LF40GZ72SdhMyl765K/i4nY5" +
	"CPcHz2Q1IKWKZ9S79xmK7G8pUhbVf4EZLvnNF1+9IvOFQUKV5Z7ZNNviqSpnql9" +
	"tAT+8+J/He0R7pcirvVSxgdr2i9V/C/gmqAEZ5qVTzRnd3uWdFoKzPdEBxP0Ipor" +
	"J1VBbCv90yBSOhVxO+QIDAQAB"

const (
	// rsaKeyBytes is the modulus size: one ciphertext block.
	rsaKeyBytes = 128
	// rsaMaxPlainBlock is the PKCS#1 v1.5 plaintext capacity per block
	// (modulus size minus 11 bytes of padding). The vendor client
	// chunks long forms at this boundary.
	rsaMaxPlainBlock = rsaKeyBytes - 11
)

var loadPublicKey = sync.OnceValues(func() (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(rsaPublicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded public key: %w", err)
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded public key: %w", err)
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("embedded public key is %T, expected RSA", key)
	}
	return pub, nil
})

// encryptChunked encrypts plaintext in 117-byte blocks, each producing
// a 128-byte ciphertext block, concatenated in order.
func encryptChunked(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	ciphertext := make([]byte, 0, ((len(plaintext)/rsaMaxPlainBlock)+1)*rsaKeyBytes)
	for start := 0; start < len(plaintext); start += rsaMaxPlainBlock {
		end := min(start+rsaMaxPlainBlock, len(plaintext))
		block, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt block at offset %d: %w", start, err)
		}
		ciphertext = append(ciphertext, block...)
	}
	return ciphertext, nil
}

// encryptForm serializes the form as compact JSON, encrypts it, and
// returns the base64 request body the encrypted endpoints expect.
func encryptForm(form any) (string, error) {
	pub, err := loadPublicKey()
	if err != nil {
		return "", err
	}

	plaintext, err := json.Marshal(form)
	if err != nil {
		return "", fmt.Errorf("failed to marshal form: %w", err)
	}

	ciphertext, err := encryptChunked(pub, plaintext)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
