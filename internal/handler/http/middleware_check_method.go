// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not. The
// API answers 404 instead so that unsupported methods do not reveal which
// routes exist. Requests whose method does match, including routes with URL
// parameters, are handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeError(w, r, ErrResourceNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
