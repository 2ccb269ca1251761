// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

var errRouteNotFound = errors.New("route not found")

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler. A
// known path requested with an unsupported method is answered with 404
// instead of chi's 405, so the set of routes is not advertised.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeError(w, errRouteNotFound, http.StatusNotFound)
	}
}
