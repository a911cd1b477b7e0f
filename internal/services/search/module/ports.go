package module

import (
	"context"

	"reposcout/internal/services/search/domain"
	ssvc "reposcout/internal/services/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSearchPort exposes service methods as module ports for cross-module usage
type adaptSearchPort struct{ svc ssvc.Service }

// Search runs the star-ranked repository search without README enrichment
func (a adaptSearchPort) Search(ctx context.Context, dom string, limit int) (domain.SearchResult, error) {
	return a.svc.Search(ctx, dom, limit)
}

// SearchWithReadmes runs Search and enriches each hit with its decoded README
func (a adaptSearchPort) SearchWithReadmes(ctx context.Context, dom string, limit int) (domain.SearchResult, error) {
	return a.svc.SearchWithReadmes(ctx, dom, limit)
}
