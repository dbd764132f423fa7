package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves the handful of S3 calls the storage issues, path-style.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string]fakeObject
}

type fakeObject struct {
	body        []byte
	contentType string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{buckets: map[string]bool{}, objects: map[string]fakeObject{}}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")

	if key == "" {
		switch r.Method {
		case http.MethodHead:
			if !f.buckets[bucket] {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
		case http.MethodPut:
			f.buckets[bucket] = true
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
		return
	}

	name := bucket + "/" + key
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		if strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING-") ||
			strings.Contains(r.Header.Get("Content-Encoding"), "aws-chunked") {
			body = decodeAWSChunked(body)
		}
		f.objects[name] = fakeObject{body: body, contentType: r.Header.Get("Content-Type")}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet, http.MethodHead:
		obj, ok := f.objects[name]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			if r.Method == http.MethodGet {
				fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message><Key>%s</Key><BucketName>%s</BucketName></Error>`, key, bucket)
			}
			return
		}
		w.Header().Set("Content-Type", obj.contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.body)))
		w.Header().Set("ETag", `"etag"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(obj.body)
		}
	case http.MethodDelete:
		delete(f.objects, name)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

// decodeAWSChunked strips the aws-chunked framing minio-go uses for
// unsigned or streaming-signed uploads over plain HTTP.
func decodeAWSChunked(raw []byte) []byte {
	var out []byte
	rest := string(raw)
	for {
		header, tail, ok := strings.Cut(rest, "\r\n")
		if !ok {
			return out
		}
		sizeHex, _, _ := strings.Cut(header, ";")
		size, err := strconv.ParseInt(strings.TrimSpace(sizeHex), 16, 64)
		if err != nil || size == 0 || int64(len(tail)) < size {
			return out
		}
		out = append(out, tail[:size]...)
		rest = strings.TrimPrefix(tail[size:], "\r\n")
	}
}

func TestMinIOFileStorage(t *testing.T) {
	fake := newFakeS3()
	srv := httptest.NewServer(fake)
	defer srv.Close()

	endpoint, err := url.Parse(srv.URL)
	require.NoError(t, err)

	ctx := context.Background()
	s, err := NewMinIOFileStorage(ctx, config.MinIO{
		Endpoint:  endpoint.Host,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "voy-secure-docs",
		Region:    "us-east-1",
	}, logger.Nop())
	require.NoError(t, err)
	assert.True(t, fake.buckets["voy-secure-docs"], "bucket is created on start")

	key := "u1/documento_1700000000000.png"
	require.NoError(t, s.PutObject(ctx, key, strings.NewReader("png-bytes"), 9, "image/png"))

	object, err := s.GetObject(ctx, key)
	require.NoError(t, err)
	content, err := io.ReadAll(object.Content)
	require.NoError(t, err)
	require.NoError(t, object.Content.Close())

	assert.Equal(t, "png-bytes", string(content))
	assert.Equal(t, "image/png", object.ContentType)
	assert.Equal(t, int64(9), object.Size)

	require.NoError(t, s.RemoveObject(ctx, key))

	_, err = s.GetObject(ctx, key)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}
