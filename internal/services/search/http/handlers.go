// Package http provides search endpoints
package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"reposcout/internal/modkit/httpkit"
	perr "reposcout/internal/platform/errors"
	"reposcout/internal/services/search/domain"
)

type handlers struct {
	svc domain.ServicePort
}

// Register mounts the search routes
func Register(r httpkit.Router, svc domain.ServicePort) {
	h := &handlers{svc: svc}

	httpkit.PostJSON(r, "/", h.post)
	httpkit.Get(r, "/", h.byKeywords)
	httpkit.Get(r, "/{domain}", h.byDomain)
	httpkit.Get(r, "/{domain}/no-readme", h.byDomainNoReadme)
}

// swagger:route POST /search Search searchPost
// @Summary Search repositories by domain, enriched with READMEs
// @Tags Search
// @Accept json
// @Produce json
// @Success 200 type domain.SearchResult ok
// @Router /search [post]
func (h *handlers) post(r *http.Request, in domain.SearchRequest) (any, error) {
	return h.svc.SearchWithReadmes(r.Context(), in.Domain, in.Limit)
}

// swagger:route GET /search Search searchByKeywords
// @Summary Search repositories by keywords query, enriched with READMEs
// @Tags Search
// @Produce json
// @Success 200 type domain.SearchResult ok
// @Router /search [get]
func (h *handlers) byKeywords(r *http.Request) (any, error) {
	keywords := r.URL.Query().Get("keywords")
	if keywords == "" {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "keywords query parameter is required"), "keywords")
	}
	limit, err := limitQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SearchWithReadmes(r.Context(), keywords, limit)
}

// swagger:route GET /search/{domain} Search searchByDomain
// @Summary Search repositories by path domain, enriched with READMEs
// @Tags Search
// @Produce json
// @Success 200 type domain.SearchResult ok
// @Router /search/{domain} [get]
func (h *handlers) byDomain(r *http.Request) (any, error) {
	limit, err := limitQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.SearchWithReadmes(r.Context(), domainParam(r), limit)
}

// swagger:route GET /search/{domain}/no-readme Search searchByDomainNoReadme
// @Summary Search repositories by path domain without README enrichment
// @Tags Search
// @Produce json
// @Success 200 type domain.SearchResult ok
// @Router /search/{domain}/no-readme [get]
func (h *handlers) byDomainNoReadme(r *http.Request) (any, error) {
	limit, err := limitQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), domainParam(r), limit)
}

// domainParam returns the path domain with percent escapes resolved
// chi captures the raw segment, so "machine%20learning" arrives encoded
func domainParam(r *http.Request) string {
	raw := chi.URLParam(r, "domain")
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}

// limitQuery parses the optional limit query param; zero means service default
func limitQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "limit must be a positive integer"), "limit")
	}
	return n, nil
}
