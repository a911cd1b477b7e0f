// Package service keeps in-memory usage counters behind a mutex
package service

import (
	"context"
	"math"
	"sort"
	"sync"

	"reposcout/internal/core/normalize"
	"reposcout/internal/services/stats/domain"
)

// Service defines the stats service contract
type Service interface {
	domain.RecorderPort
	domain.ReaderPort
}

// Options tune the ranking size
type Options struct {
	TopDomains int
}

// Svc implements the stats service
// counters are zeroed at process start and intentionally not persisted
type Svc struct {
	mu       sync.Mutex
	searches int
	repos    int
	byDomain map[string]int
	top      int
}

// New constructs a stats service
func New(opts Options) *Svc {
	top := opts.TopDomains
	if top <= 0 {
		top = 10
	}
	return &Svc{byDomain: make(map[string]int), top: top}
}

// Record counts one completed search and its result size
// Domains are bucketed case and accent insensitively
func (s *Svc) Record(_ context.Context, dom string, repositories int) {
	key := normalize.Key(dom)
	if key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches++
	s.repos += repositories
	s.byDomain[key]++
}

// Usage returns a consistent snapshot of the counters
func (s *Svc) Usage(_ context.Context) domain.Usage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := domain.Usage{
		TotalSearches:          s.searches,
		TotalRepositoriesFound: s.repos,
		MostSearchedDomains:    make([]domain.DomainCount, 0, len(s.byDomain)),
	}
	if s.searches > 0 {
		avg := float64(s.repos) / float64(s.searches)
		out.AverageRepositoriesPerSearch = math.Round(avg*100) / 100
	}
	for d, c := range s.byDomain {
		out.MostSearchedDomains = append(out.MostSearchedDomains, domain.DomainCount{Domain: d, Count: c})
	}
	// count desc, then domain asc so equal counts rank deterministically
	sort.Slice(out.MostSearchedDomains, func(i, j int) bool {
		a, b := out.MostSearchedDomains[i], out.MostSearchedDomains[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Domain < b.Domain
	})
	if len(out.MostSearchedDomains) > s.top {
		out.MostSearchedDomains = out.MostSearchedDomains[:s.top]
	}
	return out
}
