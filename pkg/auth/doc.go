// Package auth manages the stored login session for the vendor API.
//
// A Credential is the member id and session token returned by the login
// endpoint, persisted as a plain JSON file with 0600 permissions. The
// credential is always passed explicitly to the API client rather than
// read from process-wide state, so the core stays testable without a
// real session. Credential storage is intentionally unencrypted; the
// file permission is the only protection, matching the vendor's own
// client behavior.
package auth
