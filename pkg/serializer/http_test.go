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

package serializer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpReader_Read(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	reader := NewHttpReader()
	data, err := reader.Read(srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
	assert.Equal(t, HttpReaderUserAgent, gotAgent)
}

func TestHttpReader_ReadNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	reader := NewHttpReader()
	_, err := reader.Read(srv.URL)
	assert.Error(t, err)
}

func TestHttpReader_EmptyURL(t *testing.T) {
	reader := NewHttpReader()
	_, err := reader.Read("")
	assert.Error(t, err)
}

func TestHttpReader_Options(t *testing.T) {
	reader := NewHttpReader(
		WithUserAgent("custom/1.0"),
		WithTotalTimeout(3*time.Second),
	)
	assert.Equal(t, "custom/1.0", reader.UserAgent)
	assert.Equal(t, 3*time.Second, reader.Client.Timeout)
}

func TestHttpReader_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "out.bin")
	reader := NewHttpReader()
	require.NoError(t, reader.Download(srv.URL, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}
