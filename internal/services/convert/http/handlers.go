// Package http provides http transport for conversion
package http

import (
	stdhttp "net/http"

	"tsconv/internal/modkit/httpkit"
	"tsconv/internal/services/convert/domain"
)

// Register mounts conversion endpoints on the given router
func Register(r httpkit.Router, s domain.ConversionPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.DetectInput](r, "/detect", h.detect)
	httpkit.PostJSON[domain.ParseInput](r, "/parse", h.parse)
	httpkit.PostJSON[domain.FormatInput](r, "/format", h.format)
	httpkit.Get(r, "/stats", h.stats)
	httpkit.Post(r, "/cache/clear", h.clearCache)
}

type handlers struct{ svc domain.ConversionPort }

// swagger:route POST /convert/detect Convert convertDetect
// @Summary Detect the format of a date or time string
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Input"
// @Success 200 {object} domain.DetectResponse "ok"
// @Router /convert/detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// swagger:route POST /convert/parse Convert convertParse
// @Summary Parse a date or time string into an instant
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Input and optional format id"
// @Success 200 {object} domain.ParseResponse "ok"
// @Router /convert/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// swagger:route POST /convert/format Convert convertFormat
// @Summary Render an instant in a named format
// @Tags Convert
// @Accept json
// @Produce json
// @Param payload body domain.FormatInput true "Instant, format id, optional timezone and locale"
// @Success 200 {object} domain.FormatResponse "ok"
// @Router /convert/format [post]
func (h *handlers) format(r *stdhttp.Request, in domain.FormatInput) (any, error) {
	return h.svc.Format(r.Context(), in)
}

// swagger:route GET /convert/stats Convert convertStats
// @Summary Detection history aggregates and cache usage
// @Tags Convert
// @Produce json
// @Success 200 {object} domain.StatsResponse "ok"
// @Router /convert/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context())
}

// swagger:route POST /convert/cache/clear Convert convertCacheClear
// @Summary Clear the parse and format result caches
// @Tags Convert
// @Produce json
// @Success 200 {object} domain.CacheClearResponse "ok"
// @Router /convert/cache/clear [post]
func (h *handlers) clearCache(r *stdhttp.Request) (any, error) {
	return h.svc.ClearCaches(r.Context())
}
