// Package api provides the HTTP API for the application
package api

import (
	"reposcout/internal/platform/config"
	"reposcout/internal/platform/logger"
	phttp "reposcout/internal/platform/net/http"

	"reposcout/internal/modkit"
	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/modkit/module"
	"reposcout/internal/modkit/swaggerkit"

	metamod "reposcout/internal/services/meta/module"
	searchmod "reposcout/internal/services/search/module"
	statsmod "reposcout/internal/services/stats/module"
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

	// Construct stats first and hand its recorder to search, so every
	// completed search feeds the usage counters
	stats := statsmod.New(deps)
	rec := module.MustPortsOf[statsmod.Ports](stats).Recorder

	search := searchmod.New(
		deps,
		modkit.WithPorts(searchmod.Ports{
			Recorder: rec,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		stats,
		search,
	}

	// everything mounts at the root with a shared middleware stack
	r.Group(func(root phttp.Router) {
		root.Use(httpkit.CommonStack()...)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(root)
		}
	})

	// Swagger + profiler stay outside the common stack
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}
