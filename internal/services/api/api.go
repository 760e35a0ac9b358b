// Package api provides the HTTP API for the application
package api

import (
	"tsconv/internal/platform/config"
	"tsconv/internal/platform/logger"
	phttp "tsconv/internal/platform/net/http"

	"tsconv/internal/modkit"
	"tsconv/internal/modkit/httpkit"
	"tsconv/internal/modkit/module"
	"tsconv/internal/modkit/swaggerkit"

	metamod "tsconv/internal/services/api/meta/module"
	convmod "tsconv/internal/services/convert/module"
	fmtsmod "tsconv/internal/services/formats/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the convert module first; it owns the catalog port
	convert := convmod.New(deps)
	catalog := module.MustPortsOf[convmod.Ports](convert).Catalog

	// Inject that catalog into the formats module
	formats := fmtsmod.New(
		deps,
		modkit.WithPorts(fmtsmod.Ports{
			Catalog: catalog,
		}),
	)

	mods := []module.Module{
		metamod.New(deps, metamod.Deps{Formats: len(catalog.All())}),
		convert,
		formats,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
