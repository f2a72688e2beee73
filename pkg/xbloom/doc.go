// Package xbloom is the client for the vendor's recipe API.
//
// # Protocol
//
// The backend speaks JSON over POST with two body styles:
//
//   - Authenticated endpoints take Base64(RSA(JSON)) as the raw body:
//     the JSON form is encrypted with the vendor's embedded 1024-bit
//     RSA public key, PKCS#1 v1.5, split into 117-byte plaintext blocks
//     (128-byte ciphertext each), then base64-encoded.
//   - The public share endpoint takes plain JSON.
//
// The skey field is a fixed application key baked into the vendor app,
// not a session token; real identity is the member id returned by
// login. Every call that needs identity takes an explicit
// auth.Credential; the client holds no session state.
//
// # Concerns owned here
//
// Transport, request pacing, and the translation of the vendor's
// result/info envelope into structured errors. Validation happens
// before a recipe reaches this package, token extraction before a fetch
// reaches it.
package xbloom
