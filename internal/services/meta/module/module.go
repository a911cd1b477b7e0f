// Package module wires the root, health and domains endpoints using a tiny module
package module

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	gh "reposcout/internal/adapters/github"
	modkit "reposcout/internal/modkit"
	"reposcout/internal/modkit/httpkit"
	str "reposcout/internal/platform/strings"

	metahttp "reposcout/internal/services/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a meta module with the provided dependencies and options
// the module mounts at the router root, so its prefix stays empty
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
	}, opts...)...)

	gc := deps.Cfg.Prefix("GITHUB_")
	ghc := gh.NewClient(gh.Options{
		BaseURL:   gc.MayString("BASE_URL", ""),
		UserAgent: gc.MayString("UA", ""),
		Timeout:   gc.MayDuration("TIMEOUT", 10*time.Second),
		Token:     gc.MayString("TOKEN", ""),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "reposcout API",
			Port:        portNumber(deps.Cfg.MayString("API_PORT", ":5088")),
			GitHub:      ghc,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
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

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return m.prefix }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// portNumber extracts the numeric port from a listen address like ":5088"
func portNumber(addr string) int {
	raw := addr
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		raw = addr[i+1:]
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
