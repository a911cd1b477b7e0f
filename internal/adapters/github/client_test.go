package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reposcout/internal/core/version"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	o := Options{BaseURL: srv.URL, Token: "tok-123"}
	for _, fn := range opts {
		fn(&o)
	}
	return NewClient(o)
}

func writePage(w http.ResponseWriter, total int, items []Repo) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(searchPage{TotalCount: total, Items: items})
}

func repos(n, startStars int) []Repo {
	out := make([]Repo, n)
	for i := range out {
		out[i] = Repo{
			Name:       fmt.Sprintf("repo-%d", i),
			FullName:   fmt.Sprintf("owner/repo-%d", i),
			Stargazers: startStars - i,
			HTMLURL:    fmt.Sprintf("https://example.com/owner/repo-%d", i),
		}
	}
	return out
}

func TestDoSetsHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		writePage(w, 0, nil)
	})

	if _, err := c.SearchRepositories(context.Background(), "go", 1); err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotAuth != "token tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/vnd.github+json" {
		t.Fatalf("Accept = %q", gotAccept)
	}
	if gotUA != "reposcout/"+version.Info().Version {
		t.Fatalf("User-Agent = %q", gotUA)
	}
}

func TestSearchShortPageStops(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		// 3 items is fewer than per_page (10), so one page is enough
		writePage(w, 3, repos(3, 100))
	})

	got, err := c.SearchRepositories(context.Background(), "go", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestSearchStopsAtOverscan(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Query().Get("per_page") != "10" {
			t.Errorf("per_page = %q, want 10", r.URL.Query().Get("per_page"))
		}
		// full pages keep the walk going until limit*overscan accumulated
		writePage(w, 1000, repos(10, 100))
	})

	got, err := c.SearchRepositories(context.Background(), "go", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// want = 5*2 = 10, first full page satisfies it
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
}

func TestSearchPageCap(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writePage(w, 1000, repos(2, 100))
	}, func(o *Options) {
		o.MaxPages = 3
		o.Overscan = 100 // never satisfied by accumulation
	})

	// per_page is 2 (limit*2 with limit 1), every page is full, cap must kick in
	got, err := c.SearchRepositories(context.Background(), "go", 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want page cap 3", calls)
	}
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
}

func TestSearchFailedPageReturnsAccumulated(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writePage(w, 1000, repos(2, 100))
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}, func(o *Options) {
		o.Overscan = 100
	})

	got, err := c.SearchRepositories(context.Background(), "go", 1)
	if err != nil {
		t.Fatalf("failed page should not surface an error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want accumulated 2", len(got))
	}
}

func TestSearchTransportFailureKeepsAccumulated(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writePage(w, 1000, repos(2, 100))
			return
		}
		// drop the connection mid-walk so the client sees a transport error
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("server does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Fatalf("hijack: %v", err)
		}
		_ = conn.Close()
	}, func(o *Options) {
		o.Overscan = 100
	})

	got, err := c.SearchRepositories(context.Background(), "go", 1)
	if err != nil {
		t.Fatalf("transport failure past page 1 should not surface an error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want accumulated 2", len(got))
	}
}

func TestSearchMalformedPageKeepsAccumulated(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			writePage(w, 1000, repos(2, 100))
			return
		}
		_, _ = w.Write([]byte(`{"items": [truncated`))
	}, func(o *Options) {
		o.Overscan = 100
	})

	got, err := c.SearchRepositories(context.Background(), "go", 1)
	if err != nil {
		t.Fatalf("malformed page past page 1 should not surface an error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want accumulated 2", len(got))
	}
}

func TestSearchFirstPageFailureSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("server does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Fatalf("hijack: %v", err)
		}
		_ = conn.Close()
	})

	got, err := c.SearchRepositories(context.Background(), "go", 5)
	if err == nil {
		t.Fatalf("first page failure with nothing accumulated must error")
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestSearchQueryShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "machine learning sort:stars" {
			t.Errorf("q = %q", q.Get("q"))
		}
		if q.Get("sort") != "stars" || q.Get("order") != "desc" {
			t.Errorf("sort/order = %q/%q", q.Get("sort"), q.Get("order"))
		}
		writePage(w, 0, nil)
	})
	if _, err := c.SearchRepositories(context.Background(), "machine learning", 5); err != nil {
		t.Fatalf("search: %v", err)
	}
}

func TestReadmeBase64(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("Hello World"))
	// GitHub inserts newlines into the base64 stream
	wrapped := content[:4] + "\n" + content[4:] + "\n"
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello/readme" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(readmePayload{Content: wrapped, Encoding: "base64"})
	})

	got, ok, err := c.Readme(context.Background(), "octocat", "hello")
	if err != nil || !ok {
		t.Fatalf("readme: ok=%v err=%v", ok, err)
	}
	if got != "Hello World" {
		t.Fatalf("content = %q", got)
	}
}

func TestReadmePassthroughEncoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(readmePayload{Content: "plain text", Encoding: "utf-8"})
	})
	got, ok, err := c.Readme(context.Background(), "o", "r")
	if err != nil || !ok || got != "plain text" {
		t.Fatalf("readme = %q ok=%v err=%v", got, ok, err)
	}
}

func TestReadmeNotFoundIsAbsent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	got, ok, err := c.Readme(context.Background(), "o", "r")
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if ok || got != "" {
		t.Fatalf("404 should report absent, got %q ok=%v", got, ok)
	}
}

func TestReadmeBadDecodeIsAbsent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(readmePayload{Content: "%%%not-base64%%%", Encoding: "base64"})
	})
	_, ok, err := c.Readme(context.Background(), "o", "r")
	if err != nil || ok {
		t.Fatalf("decode failure should report absent without error, ok=%v err=%v", ok, err)
	}
}

func TestReadmeServerErrorSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, _, err := c.Readme(context.Background(), "o", "r")
	var gse *GHStatusError
	if err == nil || !errors.As(err, &gse) || gse.Status != 500 {
		t.Fatalf("expected GHStatusError 500, got %v", err)
	}
}

func TestProbe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("per_page") != "1" {
			t.Errorf("probe per_page = %q", r.URL.Query().Get("per_page"))
		}
		writePage(w, 1, repos(1, 10))
	})
	if !c.Probe(context.Background()) {
		t.Fatalf("probe should succeed on 200")
	}

	bad := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if bad.Probe(context.Background()) {
		t.Fatalf("probe should fail on 401")
	}
}

func TestHasToken(t *testing.T) {
	if !NewClient(Options{Token: "x"}).HasToken() {
		t.Fatalf("HasToken true expected")
	}
	if NewClient(Options{Token: "  "}).HasToken() {
		t.Fatalf("HasToken false expected for blank token")
	}
}
