package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Readme performs GET /repos/{owner}/{repo}/readme and returns the decoded text.
// Returns ok=false without error when the repository has no README (404) or
// the payload cannot be decoded; other non-200 statuses surface as GHStatusError
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, bool, error) {
	path := fmt.Sprintf("/repos/%s/%s/readme", owner, repo)

	resp, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return "", false, err
	}

	if resp.StatusCode == http.StatusNotFound {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		return "", false, &GHStatusError{
			Status: resp.StatusCode,
			Body:   string(body),
			Err:    fmt.Errorf("readme %d", resp.StatusCode),
		}
	}

	var out readmePayload
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if cerr := resp.Body.Close(); cerr != nil {
		c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
	}
	if err != nil {
		return "", false, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return "", false, err
	}

	if out.Encoding != "base64" {
		// already plain text per the API contract
		return out.Content, true, nil
	}

	// GitHub wraps base64 content with newlines
	raw := strings.ReplaceAll(out.Content, "\n", "")
	dec, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("github readme decode failed, treating as absent")
		return "", false, nil
	}
	return string(dec), true, nil
}
