// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with the request body prefixed by "echo: ".
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Length", "999")
	_, _ = w.Write(append([]byte("echo: "), body...))
})

func TestGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzip: true},
		{name: "gzip not accepted", acceptEncoding: "", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("olá"))
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			rr := httptest.NewRecorder()

			withGZip(echoHandler).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if !tt.wantGzip {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "echo: olá", rr.Body.String())
				return
			}
			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			assert.Empty(t, rr.Header().Get("Content-Length"), "length of the plain body must not leak")
			assert.Equal(t, "echo: olá", gunzip(t, rr.Body.Bytes()))
		})
	}
}

func TestGZip_DecodesRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", gzipped(t, `{"title":"AIMA"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `echo: {"title":"AIMA"}`, rr.Body.String())
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(echoHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_NoContentStaysEmpty(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_ConcurrentRequestsReusePools(t *testing.T) {
	handler := withGZip(echoHandler)

	payloads := make([]string, 20)
	requests := make([]*http.Request, 20)
	recorders := make([]*httptest.ResponseRecorder, 20)
	for i := range requests {
		payloads[i] = strings.Repeat("documento ", i+1)
		requests[i] = httptest.NewRequest(http.MethodPost, "/", gzipped(t, payloads[i]))
		requests[i].Header.Set("Content-Encoding", "gzip")
		requests[i].Header.Set("Accept-Encoding", "gzip")
		recorders[i] = httptest.NewRecorder()
	}

	var wg sync.WaitGroup
	for i := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handler.ServeHTTP(recorders[i], requests[i])
		}()
	}
	wg.Wait()

	for i, rr := range recorders {
		assert.Equal(t, "echo: "+payloads[i], gunzip(t, rr.Body.Bytes()))
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}

	require.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}

func TestGZip_SkipsPrecompressedBodies(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", "8")
		_, _ = w.Write([]byte("%PDF-1.7"))
	})
	req := httptest.NewRequest(http.MethodGet, "/api/documents/x/file", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "8", rr.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF-1.7", rr.Body.String())
}

func TestCompressible(t *testing.T) {
	assert.True(t, compressible(""))
	assert.True(t, compressible("application/json"))
	assert.True(t, compressible("text/plain; charset=utf-8"))
	assert.False(t, compressible("image/png"))
	assert.False(t, compressible("Application/PDF"))
	assert.False(t, compressible("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
}
