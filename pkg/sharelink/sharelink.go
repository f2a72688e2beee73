/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package sharelink

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/mchmarny/bloomctl/pkg/errors"
)

const (
	// ShareHost is the vendor's share-link host.
	ShareHost = "share-h5.xbloom.com"

	// tokenParam is the query parameter carrying the token in share URLs.
	tokenParam = "id"

	// tokenBlockSize is the decoded token length in bytes. Every
	// vendor-issued token observed decodes to exactly one 16-byte block.
	tokenBlockSize = 16
)

// Token is an opaque share token: the percent-decoded value of a share
// URL's id parameter. It is produced by the backend and meaningful to
// this tool only through DecodeToken.
type Token string

// String implements fmt.Stringer.
func (t Token) String() string {
	return string(t)
}

// ExtractToken returns the share token from either a full share URL or a
// bare token string. URL inputs must carry the id query parameter; its
// value is percent-decoded before use. Bare inputs are percent-decoded
// as well so a copy-pasted raw parameter value works too.
func ExtractToken(input string) (Token, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", errors.New(errors.ErrCodeMalformedLink, "empty share link or token")
	}

	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeMalformedLink, "share link is not a valid URL", err)
		}
		token := u.Query().Get(tokenParam)
		if token == "" {
			return "", errors.NewWithContext(errors.ErrCodeMalformedLink,
				fmt.Sprintf("share link has no %q query parameter", tokenParam),
				map[string]any{"url": s})
		}
		return Token(token), nil
	}

	// PathUnescape rather than QueryUnescape: a literal '+' is part of
	// the base64 alphabet, not an encoded space.
	token, err := url.PathUnescape(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMalformedLink, "token is not valid percent-encoding", err)
	}
	return Token(token), nil
}

// DecodeToken decodes the token's inner encoding: standard padded base64
// over a single 16-byte identifier block. Structural failures (bad
// character set, invalid padding, wrong decoded length) return a
// DECODE_FAILED error; the raw base64 error is attached as the cause.
func DecodeToken(t Token) ([]byte, error) {
	raw, err := base64.StdEncoding.Strict().DecodeString(string(t))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeDecodeFailed,
			"share token is not valid base64", err,
			map[string]any{"token": string(t)})
	}
	if len(raw) != tokenBlockSize {
		return nil, errors.NewWithContext(errors.ErrCodeDecodeFailed,
			fmt.Sprintf("share token decodes to %d bytes, expected %d", len(raw), tokenBlockSize),
			map[string]any{"token": string(t)})
	}
	return raw, nil
}

// EncodeToken is the exact inverse of DecodeToken:
// EncodeToken(DecodeToken(t)) == t for every well-formed token, and
// DecodeToken(EncodeToken(b)) == b for every 16-byte block.
func EncodeToken(raw []byte) Token {
	return Token(base64.StdEncoding.EncodeToString(raw))
}

// ShareURL formats a token as a full share URL with the token
// percent-encoded into the id parameter.
func ShareURL(t Token) string {
	return fmt.Sprintf("https://%s/?%s=%s", ShareHost, tokenParam, url.QueryEscape(string(t)))
}
