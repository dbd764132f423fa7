// Package http implements the REST transport of the VOY server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, response
// compression, and request deadlines are handled in this package before
// requests are delegated to the service layer.
package http
