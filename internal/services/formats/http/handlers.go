// Package http provides http transport for the format catalog
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"tsconv/internal/modkit/httpkit"
	svc "tsconv/internal/services/formats/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{identifier}", h.get)
}

type handlers struct{ svc *svc.Service }

// swagger:route GET /formats Formats formatsList
// @Summary List known formats
// @Tags Formats
// @Produce json
// @Param category query string false "Filter by category" Enums(standard, locale, iso, custom, business, technical, cultural)
// @Success 200 {object} domain.ListResponse "ok"
// @Router /formats [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), r.URL.Query().Get("category"))
}

// swagger:route GET /formats/{identifier} Formats formatsGet
// @Summary Resolve one format by id or alias
// @Tags Formats
// @Produce json
// @Param identifier path string true "Format id or alias"
// @Success 200 {object} domain.FormatInfo "ok"
// @Failure 404 {object} httpkit.Envelope "unknown format"
// @Router /formats/{identifier} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "identifier"))
}
