// Package http provides the stats endpoint
package http

import (
	"net/http"

	"reposcout/internal/modkit/httpkit"
	"reposcout/internal/services/stats/domain"
)

type handlers struct {
	svc domain.ReaderPort
}

// Register mounts the stats routes
func Register(r httpkit.Router, svc domain.ReaderPort) {
	h := &handlers{svc: svc}

	httpkit.Get(r, "/", h.usage)
}

// swagger:route GET /stats Stats statsUsage
// @Summary Cumulative usage counters since process start
// @Tags Stats
// @Produce json
// @Success 200 type domain.Usage ok
// @Router /stats [get]
func (h *handlers) usage(r *http.Request) (any, error) {
	return h.svc.Usage(r.Context()), nil
}
