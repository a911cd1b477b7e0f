package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "reposcout/internal/platform/errors"
	phttp "reposcout/internal/platform/net/http"
	"reposcout/internal/services/search/domain"
)

type fakeService struct {
	lastDomain   string
	lastLimit    int
	enriched     bool
	err          error
	repositories []domain.Repository
}

func (f *fakeService) Search(_ context.Context, dom string, limit int) (domain.SearchResult, error) {
	f.lastDomain, f.lastLimit, f.enriched = dom, limit, false
	if f.err != nil {
		return domain.SearchResult{}, f.err
	}
	return domain.SearchResult{Domain: dom, Repositories: f.repositories, TotalCount: len(f.repositories)}, nil
}

func (f *fakeService) SearchWithReadmes(ctx context.Context, dom string, limit int) (domain.SearchResult, error) {
	res, err := f.Search(ctx, dom, limit)
	f.enriched = true
	return res, err
}

func mount(f *fakeService) http.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/search", func(rr phttp.Router) { Register(rr, f) })
	return r.Mux()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostSearch(t *testing.T) {
	f := &fakeService{repositories: []domain.Repository{{Name: "x", FullName: "o/x", Stars: 9}}}
	rec := do(t, mount(f), http.MethodPost, "/search", `{"domain":"machine learning","limit":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if f.lastDomain != "machine learning" || f.lastLimit != 3 || !f.enriched {
		t.Fatalf("service call wrong: %+v", f)
	}
	var env struct {
		Data domain.SearchResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.TotalCount != 1 || env.Data.Repositories[0].FullName != "o/x" {
		t.Fatalf("payload = %+v", env.Data)
	}
}

func TestPostSearchValidation(t *testing.T) {
	rec := do(t, mount(&fakeService{}), http.MethodPost, "/search", `{"limit":3}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing domain should be 400, got %d", rec.Code)
	}
}

func TestGetSearchByKeywords(t *testing.T) {
	f := &fakeService{}
	rec := do(t, mount(f), http.MethodGet, "/search?keywords=golang&limit=7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.lastDomain != "golang" || f.lastLimit != 7 || !f.enriched {
		t.Fatalf("service call wrong: %+v", f)
	}
}

func TestGetSearchMissingKeywords(t *testing.T) {
	rec := do(t, mount(&fakeService{}), http.MethodGet, "/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing keywords should be 400, got %d", rec.Code)
	}
}

func TestGetSearchBadLimit(t *testing.T) {
	rec := do(t, mount(&fakeService{}), http.MethodGet, "/search?keywords=go&limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit should be 400, got %d", rec.Code)
	}
}

func TestGetSearchByDomain(t *testing.T) {
	f := &fakeService{}
	rec := do(t, mount(f), http.MethodGet, "/search/machine%20learning?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.lastDomain != "machine learning" || f.lastLimit != 2 || !f.enriched {
		t.Fatalf("service call wrong: %+v", f)
	}
}

func TestGetSearchNoReadme(t *testing.T) {
	f := &fakeService{}
	rec := do(t, mount(f), http.MethodGet, "/search/golang/no-readme", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if f.lastDomain != "golang" || f.lastLimit != 0 || f.enriched {
		t.Fatalf("no-readme must skip enrichment: %+v", f)
	}
}

func TestSearchErrorMapping(t *testing.T) {
	f := &fakeService{err: perr.Unavailablef("GitHub token not configured")}
	rec := do(t, mount(f), http.MethodGet, "/search/go", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("missing token should be 503, got %d", rec.Code)
	}

	f.err = perr.Wrapf(context.DeadlineExceeded, perr.ErrorCodeUpstream, "search failed")
	rec = do(t, mount(f), http.MethodGet, "/search/go", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("upstream failure should be 500, got %d", rec.Code)
	}
}
