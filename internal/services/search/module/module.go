// Package module wires search into the API using modkit
package module

import (
	"net/http"

	gh "reposcout/internal/adapters/github"
	modkit "reposcout/internal/modkit"
	"reposcout/internal/modkit/httpkit"
	str "reposcout/internal/platform/strings"

	"reposcout/internal/services/search/domain"
	shttp "reposcout/internal/services/search/http"
	ssvc "reposcout/internal/services/search/service"
)

// Module implements the search API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc ssvc.Service
}

// Ports declares the injected stats port for this module
// Recorder may be nil when no stats module is mounted
type Ports struct {
	Recorder domain.Recorder
}

// New constructs the search module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("search"),
		modkit.WithPrefix("/search"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}

	ghc := gh.NewClient(gh.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Token:     cfg.Token,
		MaxPages:  cfg.MaxPages,
		Overscan:  cfg.Overscan,
	})

	svc := ssvc.New(ghc, injected.Recorder, ssvc.Options{
		DefaultLimit:      cfg.DefaultLimit,
		MaxLimit:          cfg.MaxLimit,
		ReadmeConcurrency: cfg.ReadmeConcurrency,
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
	m.ports = adaptSearchPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		shttp.Register(r, m.svc)
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
func (m *Module) Name() string { return str.MustString(m.name, "search") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
