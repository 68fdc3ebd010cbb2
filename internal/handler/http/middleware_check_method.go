// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. A
// request whose method is not registered for the matched pattern gets 404
// instead of chi's default 405, so probing with the wrong method reveals
// nothing about which routes exist.
//
// Only exact pattern matches are compared; parameterised segments are not
// expanded.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		http.NotFound(w, r)
	}
}
