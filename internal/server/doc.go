// Package server runs the HTTP transport of the VOY backend.
//
// It owns the listener lifecycle: startup, reaction to termination signals
// and graceful shutdown that lets in-flight requests finish.
package server
