// Package http provides root, health and domains endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"reposcout/internal/core/domains"
	"reposcout/internal/core/version"
	"reposcout/internal/modkit/httpkit"
)

// Prober is satisfied by the GitHub adapter
type Prober interface {
	Probe(stdctx.Context) bool
	HasToken() bool
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName  string
	Port         int
	GitHub       Prober
	ProbeTimeout time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ProbeTimeout <= 0 {
		d.ProbeTimeout = 5 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/", h.root)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/domains", h.domains)
}

// RootResponse is the service directory payload
type RootResponse struct {
	Message   string            `json:"message" example:"reposcout API"`
	Version   string            `json:"version" example:"1.0.0"`
	Port      int               `json:"port" example:"5088"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the health payload
type HealthResponse struct {
	Status                string `json:"status" example:"healthy"` // healthy unhealthy
	APIConnected          bool   `json:"api_connected" example:"true"`
	GithubTokenConfigured bool   `json:"github_token_configured" example:"true"`
}

// DomainsResponse lists suggested search terms
type DomainsResponse struct {
	PopularDomains []string `json:"popular_domains"`
	TotalCount     int      `json:"total_count" example:"27"`
	Description    string   `json:"description"`
}

// swagger:route GET / Meta metaRoot
// @Summary Service metadata and endpoint directory
// @Tags Meta
// @Produce json
// @Success 200 type RootResponse ok
// @Router / [get]
func (h *handlers) root(_ *http.Request) (any, error) {
	return RootResponse{
		Message: h.deps.ServiceName,
		Version: version.Info().Version,
		Port:    h.deps.Port,
		Endpoints: map[string]string{
			"search":      "/search?keywords=python&limit=2",
			"search_path": "/search/{domain}?limit=2",
			"health":      "/health",
			"domains":     "/domains",
			"stats":       "/stats",
			"docs":        "/docs",
		},
	}, nil
}

// swagger:route GET /health Meta metaHealth
// @Summary Health check with a live upstream probe
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /health [get]
func (h *handlers) health(r *http.Request) (any, error) {
	tokenConfigured := h.deps.GitHub.HasToken()

	// probe only when a token exists; without one the answer is known
	connected := false
	if tokenConfigured {
		ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ProbeTimeout)
		defer cancel()
		connected = h.deps.GitHub.Probe(ctx)
	}

	status := "healthy"
	if !tokenConfigured {
		status = "unhealthy"
	}
	return HealthResponse{
		Status:                status,
		APIConnected:          connected,
		GithubTokenConfigured: tokenConfigured,
	}, nil
}

// swagger:route GET /domains Meta metaDomains
// @Summary Curated suggested search terms
// @Tags Meta
// @Produce json
// @Success 200 type DomainsResponse ok
// @Router /domains [get]
func (h *handlers) domains(_ *http.Request) (any, error) {
	list := domains.Suggested()
	return DomainsResponse{
		PopularDomains: list,
		TotalCount:     len(list),
		Description:    "Popular technology domains for GitHub repository search",
	}, nil
}
