// Package module wires stats into the API using modkit
package module

import (
	"net/http"

	modkit "reposcout/internal/modkit"
	"reposcout/internal/modkit/httpkit"
	str "reposcout/internal/platform/strings"

	sthttp "reposcout/internal/services/stats/http"
	stsvc "reposcout/internal/services/stats/service"
)

// Module implements the stats module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc stsvc.Service
}

// New constructs the stats module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("stats"),
		modkit.WithPrefix("/stats"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := stsvc.New(stsvc.Options{TopDomains: cfg.TopDomains})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Recorder: svc, Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		sthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "stats") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
