// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but the method does not. The note API
// answers 404 instead so that unsupported methods do not reveal which
// resources exist. The route is resolved with chi's own matcher, so
// parameterised patterns such as /api/notes/{id} are covered too.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.NewRouteContext()
		if router.Match(rctx, r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
