package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/petasbytes/standup-agent/internal/activity"
)

// trackerQuery asks a Linear-style GraphQL endpoint for the viewer's
// recently updated assigned issues.
const trackerQuery = `query RecentIssues($since: DateTimeOrDuration!, $first: Int!) {
  viewer {
    assignedIssues(first: $first, orderBy: updatedAt, filter: {updatedAt: {gt: $since}}) {
      nodes { title identifier url completedAt updatedAt state { name } }
    }
  }
}`

const trackerPageSize = 50

// Tracker fetches assigned-issue activity from a project-management tool's
// GraphQL API. The request body is assembled with sjson and the response is
// read with gjson; no response structs.
type Tracker struct {
	Endpoint string
	Token    string
	HTTP     *http.Client
}

func NewTracker(endpoint, token string, client *http.Client) *Tracker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Tracker{Endpoint: endpoint, Token: token, HTTP: client}
}

func (t *Tracker) Name() string { return "tracker" }

func (t *Tracker) Fetch(ctx context.Context, user string, since time.Time) ([]activity.RawEntry, error) {
	body, err := trackerRequestBody(since)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.Token != "" {
		req.Header.Set("Authorization", t.Token)
	}

	resp, err := t.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracker query: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tracker query: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracker query: status %d", resp.StatusCode)
	}
	if errs := gjson.GetBytes(respBody, "errors"); errs.Exists() && len(errs.Array()) > 0 {
		return nil, fmt.Errorf("tracker query: %s", errs.Array()[0].Get("message").String())
	}

	var entries []activity.RawEntry
	for _, node := range gjson.GetBytes(respBody, "data.viewer.assignedIssues.nodes").Array() {
		u := node.Get("url").String()
		if u == "" {
			// Older API versions only expose the identifier.
			if id := node.Get("identifier").String(); id != "" {
				u = "https://linear.app/issue/" + id
			}
		}
		e := activity.RawEntry{
			Source:    activity.SourceTracker,
			Title:     node.Get("title").String(),
			URL:       u,
			State:     node.Get("state.name").String(),
			Completed: node.Get("completedAt").Exists() && node.Get("completedAt").Type != gjson.Null,
		}
		if ts := node.Get("updatedAt").String(); ts != "" {
			if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func trackerRequestBody(since time.Time) ([]byte, error) {
	body := []byte(`{}`)
	var err error
	if body, err = sjson.SetBytes(body, "query", trackerQuery); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "variables.since", since.UTC().Format(time.RFC3339)); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "variables.first", trackerPageSize); err != nil {
		return nil, err
	}
	return body, nil
}
