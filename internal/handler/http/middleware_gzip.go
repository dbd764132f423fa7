package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// precompressed lists content type prefixes that gzip cannot shrink. Uploaded
// documents are mostly of these kinds and are streamed as they are.
var precompressed = []string{
	"image/",
	"audio/",
	"video/",
	"application/pdf",
	"application/zip",
	"application/gzip",
	"application/vnd.openxmlformats-officedocument.",
}

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			body, err := gunzipBody(req.Body)
			if err != nil {
				writeError(w, req, ErrInvalidGzipBody)
				return
			}
			req.Body = body
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer gzw.finish()

		next.ServeHTTP(gzw, req)
	})
}

func gunzipBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}

	return &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			zr.Close()
			gzipReaderPool.Put(zr)
			body.Close()
		},
	}, nil
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter decides on the first WriteHeader whether the body is
// compressed. The gzip writer is taken from the pool only in that case.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	header := w.Header()
	header.Add("Vary", "Accept-Encoding")

	if bodyAllowed(statusCode) && header.Get("Content-Encoding") == "" && compressible(header.Get("Content-Type")) {
		header.Del("Content-Length")
		header.Set("Content-Encoding", "gzip")

		w.gz = gzipWriterPool.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.gz == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.gz.Write(data)
}

func (w *gzipResponseWriter) finish() {
	if w.gz == nil {
		return
	}
	w.gz.Close()
	w.gz.Reset(io.Discard)
	gzipWriterPool.Put(w.gz)
	w.gz = nil
}

func bodyAllowed(statusCode int) bool {
	return statusCode != http.StatusNoContent && statusCode != http.StatusNotModified && statusCode >= http.StatusOK
}

// compressible reports whether a body of contentType is worth compressing.
// An unset type is sniffed as text by net/http and is compressed.
func compressible(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	for _, prefix := range precompressed {
		if strings.HasPrefix(contentType, prefix) {
			return false
		}
	}
	return true
}
