package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength  = 64
)

// withTraceID attaches a child logger carrying trace_id to the request
// context. A usable X-Trace-ID from the client is kept, anything else is
// replaced with a fresh UUID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

// validTraceID accepts short tokens of letters, digits, '-' and '_', which
// keeps client-supplied ids safe to echo in headers and logs.
func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return false
	}
	for _, c := range traceID {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
