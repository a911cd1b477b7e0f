package github

import (
	"context"
	"net/http"
)

// Probe performs a one-result search to verify API connectivity
// used by the health endpoint; any transport or status failure reports false
func (c *Client) Probe(ctx context.Context) bool {
	resp, err := c.do(ctx, http.MethodGet, "/search/repositories?q=test&per_page=1")
	if err != nil {
		return false
	}
	ok := resp.StatusCode == http.StatusOK
	if cerr := drainAndClose(resp.Body); cerr != nil {
		c.log.Error().Err(cerr).Msg("github close body failed")
	}
	return ok
}
