// Package service contains the search and enrich workflows
package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reposcout/internal/adapters/github"
	perr "reposcout/internal/platform/errors"
	"reposcout/internal/platform/logger"
	"reposcout/internal/services/search/domain"
)

// Upstream is the slice of the GitHub client the service consumes
type Upstream interface {
	SearchRepositories(ctx context.Context, domain string, limit int) ([]github.Repo, error)
	Readme(ctx context.Context, owner, repo string) (string, bool, error)
	HasToken() bool
}

// Options tune limit clamping and README fan-out
type Options struct {
	DefaultLimit      int
	MaxLimit          int
	ReadmeConcurrency int
}

func (o *Options) normalize() {
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = 5
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = 100
	}
	if o.ReadmeConcurrency <= 0 {
		o.ReadmeConcurrency = 4
	}
}

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the search service
type Svc struct {
	gh   Upstream
	rec  domain.Recorder
	opts Options
	log  logger.Logger
}

// New constructs a search service
// rec may be nil when no stats module is wired (CLI usage)
func New(gh Upstream, rec domain.Recorder, opts Options) *Svc {
	if gh == nil {
		panic("search.Service requires a non nil Upstream")
	}
	opts.normalize()
	return &Svc{gh: gh, rec: rec, opts: opts, log: *logger.Named("search")}
}

// Search runs the star-ranked search and records usage
func (s *Svc) Search(ctx context.Context, dom string, limit int) (domain.SearchResult, error) {
	res, err := s.search(ctx, dom, limit)
	if err != nil {
		return domain.SearchResult{}, err
	}
	s.record(ctx, dom, len(res.Repositories))
	return res, nil
}

// SearchWithReadmes runs the search then fans out one README fetch per hit.
// Order and count are preserved; a failed fetch leaves that record's README nil
func (s *Svc) SearchWithReadmes(ctx context.Context, dom string, limit int) (domain.SearchResult, error) {
	res, err := s.search(ctx, dom, limit)
	if err != nil {
		return domain.SearchResult{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.ReadmeConcurrency)
	for i := range res.Repositories {
		i := i
		g.Go(func() error {
			repo := res.Repositories[i]
			owner, name, ok := strings.Cut(repo.FullName, "/")
			if !ok || owner == "" || name == "" {
				s.log.Warn().Str("full_name", repo.FullName).Msg("unsplittable full_name, skipping readme")
				return nil
			}
			content, found, rerr := s.gh.Readme(gctx, owner, name)
			if rerr != nil {
				evt := s.log.Warn().Err(rerr).Str("repo", repo.FullName)
				if github.IsRateLimited(rerr) {
					evt.Bool("rate_limited", true)
				}
				evt.Msg("readme fetch failed")
				return nil
			}
			if found {
				res.Repositories[i].ReadmeContent = &content
			}
			return nil
		})
	}
	// workers never return errors; Wait only synchronizes
	_ = g.Wait()

	s.record(ctx, dom, len(res.Repositories))
	return res, nil
}

// search is the shared pipeline: clamp, query, rank, truncate, map
func (s *Svc) search(ctx context.Context, dom string, limit int) (domain.SearchResult, error) {
	if !s.gh.HasToken() {
		return domain.SearchResult{}, perr.Unavailablef("GitHub token not configured")
	}
	dom = strings.TrimSpace(dom)
	if dom == "" {
		return domain.SearchResult{}, perr.InvalidArgf("domain is required")
	}
	limit = s.clamp(limit)

	op := uuid.NewString()
	s.log.Info().Str("op", op).Str("domain", dom).Int("limit", limit).Msg("search started")

	repos, err := s.gh.SearchRepositories(ctx, dom, limit)
	if err != nil {
		s.log.Error().Str("op", op).Err(err).Msg("search failed")
		return domain.SearchResult{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "search failed")
	}

	// rank locally so ordering holds regardless of upstream pagination quirks
	sort.SliceStable(repos, func(i, j int) bool { return repos[i].Stargazers > repos[j].Stargazers })
	if len(repos) > limit {
		repos = repos[:limit]
	}

	out := domain.SearchResult{
		Domain:       dom,
		Repositories: make([]domain.Repository, 0, len(repos)),
	}
	for _, r := range repos {
		out.Repositories = append(out.Repositories, mapRepo(r))
	}
	out.TotalCount = len(out.Repositories)

	s.log.Info().Str("op", op).Int("count", out.TotalCount).Msg("search done")
	return out, nil
}

func (s *Svc) clamp(limit int) int {
	if limit <= 0 {
		return s.opts.DefaultLimit
	}
	if limit > s.opts.MaxLimit {
		return s.opts.MaxLimit
	}
	return limit
}

func (s *Svc) record(ctx context.Context, dom string, repositories int) {
	if s.rec == nil {
		return
	}
	s.rec.Record(ctx, dom, repositories)
}

func mapRepo(r github.Repo) domain.Repository {
	lang := r.Language
	if lang == "" {
		lang = "Unknown"
	}
	return domain.Repository{
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		Stars:       r.Stargazers,
		Language:    lang,
		URL:         r.HTMLURL,
	}
}
