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

package defaults

import "time"

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// Vendor API client settings.
const (
	// APIRequestTimeout is the per-request timeout for vendor API calls.
	// The vendor backend is slow on cold paths; shorter values produce
	// spurious failures on the login endpoint.
	APIRequestTimeout = 15 * time.Second

	// APIRequestsPerSecond caps the outbound request rate to the vendor
	// API. The mobile app never exceeds ~2 req/s in captures.
	APIRequestsPerSecond = 2

	// APIRequestBurst is the burst allowance for the request limiter.
	APIRequestBurst = 4
)

// CLI timeouts for command-line operations.
const (
	// CLICommandTimeout is the default timeout for a single CLI command,
	// including all network calls it performs.
	CLICommandTimeout = 2 * time.Minute
)
