// Package module wires conversion into the API using modkit
package module

import (
	"net/http"

	"tsconv/internal/core/convert"
	"tsconv/internal/core/detect"
	"tsconv/internal/core/timefmt"
	modkit "tsconv/internal/modkit"
	"tsconv/internal/modkit/httpkit"
	str "tsconv/internal/platform/strings"
	convhttp "tsconv/internal/services/convert/http"
	convsvc "tsconv/internal/services/convert/service"
)

// Module implements the convert module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *convsvc.Service
}

// New constructs the convert module. It owns the builtin catalog and
// exposes it through Ports for sibling modules
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("convert"),
		modkit.WithPrefix("/convert"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)

	reg, err := timefmt.Builtin()
	if err != nil {
		panic("convert module: builtin catalog failed to build: " + err.Error())
	}
	det := detect.NewWithOptions(reg, detect.Options{WarnBelow: o.WarnBelow})
	eng := convert.New(reg, det)
	svc := convsvc.New(eng, convsvc.Config{
		LowConfidence:  o.LowConfidence,
		ParseCacheCap:  o.ParseCacheCap,
		FormatCacheCap: o.FormatCacheCap,
		HistoryCap:     o.HistoryCap,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Conversion: svc, Catalog: reg}

	external := b.Register
	m.register = func(r httpkit.Router) {
		convhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
