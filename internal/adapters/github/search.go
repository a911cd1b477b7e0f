package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// SearchRepositories walks GET /search/repositories for the given domain and
// returns repositories in arrival order, ranked star-descending by the API.
//
// The query is "<domain> sort:stars" with explicit sort/order params. Pages are
// fetched sequentially starting at 1 until one of: the page cap is reached,
// limit*overscan rows accumulated, or a short page signals the result set end.
// Any page failure (non-200, transport, malformed body) is logged and terminates
// the walk with whatever accumulated; an error surfaces only when the very first
// page fails and there is nothing to return
func (c *Client) SearchRepositories(ctx context.Context, domain string, limit int) ([]Repo, error) {
	if limit < 1 {
		limit = 1
	}
	perPage := limit * 2
	if perPage > perPageCap {
		perPage = perPageCap
	}
	want := limit * c.opts.Overscan

	q := url.QueryEscape(domain + " sort:stars")

	var all []Repo
	for page := 1; len(all) < want && page <= c.opts.MaxPages; page++ {
		path := fmt.Sprintf("/search/repositories?q=%s&sort=stars&order=desc&per_page=%d&page=%d", q, perPage, page)

		resp, err := c.do(ctx, http.MethodGet, path)
		if err != nil {
			if len(all) == 0 {
				return nil, err
			}
			c.log.Warn().Err(err).Int("page", page).Msg("github search page failed, stopping")
			break
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			c.log.Warn().
				Int("status", resp.StatusCode).
				Int("page", page).
				Str("body", string(body)).
				Msg("github search page failed, stopping")
			break
		}

		var pg searchPage
		b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
		if err != nil {
			if len(all) == 0 {
				return nil, err
			}
			c.log.Warn().Err(err).Int("page", page).Msg("github search page read failed, stopping")
			break
		}
		if err := json.Unmarshal(b, &pg); err != nil {
			if len(all) == 0 {
				return nil, err
			}
			c.log.Warn().Err(err).Int("page", page).Msg("github search page decode failed, stopping")
			break
		}

		all = append(all, pg.Items...)

		// a short page means the result set is exhausted
		if len(pg.Items) < perPage {
			break
		}
	}
	return all, nil
}
