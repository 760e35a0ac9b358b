// Package module wires the format catalog into the API using modkit
package module

import (
	"net/http"

	modkit "tsconv/internal/modkit"
	"tsconv/internal/modkit/httpkit"
	str "tsconv/internal/platform/strings"
	fmthttp "tsconv/internal/services/formats/http"
	fmtsvc "tsconv/internal/services/formats/service"
)

// Module implements the formats module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *fmtsvc.Service
}

// New constructs the formats module. The catalog port is injected from
// the convert module via WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("formats"),
		modkit.WithPrefix("/formats"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Catalog == nil {
		panic("formats module: catalog port is required (inject with modkit.WithPorts)")
	}
	svc := fmtsvc.New(p.Catalog)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = p

	external := b.Register
	m.register = func(r httpkit.Router) {
		fmthttp.Register(r, m.svc)
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
