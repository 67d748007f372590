// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bio-console/internal/app"
	"github.com/MKhiriev/go-bio-console/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A known path called with an unregistered method is answered with 404
// instead of chi's 405, so callers cannot probe which routes exist. If the
// router does have a handler for the method and path, the request is
// dispatched normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, http.StatusNotFound, app.MsgRouteNotFound, w.Header().Get(traceIDHeader))
	}
}
