package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/petasbytes/standup-agent/internal/activity"
)

// githubSearchPageSize bounds one fetch; the standup window rarely needs more.
const githubSearchPageSize = 50

// GitHub fetches the user's recently updated issues and pull requests via the
// REST search API. Response payloads are walked with gjson rather than
// mirrored into structs; only four or five fields matter here.
type GitHub struct {
	APIBase string
	Token   string
	HTTP    *http.Client
}

func NewGitHub(apiBase, token string, client *http.Client) *GitHub {
	if client == nil {
		client = http.DefaultClient
	}
	return &GitHub{APIBase: apiBase, Token: token, HTTP: client}
}

func (g *GitHub) Name() string { return "github" }

func (g *GitHub) Fetch(ctx context.Context, user string, since time.Time) ([]activity.RawEntry, error) {
	q := fmt.Sprintf("involves:%s updated:>=%s", user, since.UTC().Format("2006-01-02"))
	u := fmt.Sprintf("%s/search/issues?q=%s&sort=updated&per_page=%d",
		g.APIBase, url.QueryEscape(q), githubSearchPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github search: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github search: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github search: status %d", resp.StatusCode)
	}

	var entries []activity.RawEntry
	for _, item := range gjson.GetBytes(body, "items").Array() {
		e := activity.RawEntry{
			Source: activity.SourceCodeHost,
			Title:  item.Get("title").String(),
			URL:    item.Get("html_url").String(),
			State:  item.Get("state").String(),
			Merged: item.Get("pull_request.merged_at").Exists() && item.Get("pull_request.merged_at").Type != gjson.Null,
		}
		if ts := item.Get("updated_at").String(); ts != "" {
			if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
