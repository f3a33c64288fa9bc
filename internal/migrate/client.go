// Package migrate implements the legacy-to-new course migration
// tooling: field-set analysis of legacy versus discriminated course
// documents, and a one-shot apply pass that posts mapped legacy courses
// to the new API.
//
// Everything goes through the HTTP API rather than the database so the
// tool exercises the exact validation path production writes do.
package migrate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// Client talks to the course API with an admin bearer token.
type Client struct {
	base  string
	token string
	hc    *http.Client
	log   *zap.Logger
}

// NewClient validates the base URL and builds a client.
func NewClient(baseURL, token string, logger *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if !urlutil.IsValidAbsHTTPURL(baseURL) {
		return nil, fmt.Errorf("api base URL must be absolute http(s), got %q", baseURL)
	}
	if token == "" {
		return nil, fmt.Errorf("an admin token is required")
	}
	return &Client{
		base:  baseURL,
		token: token,
		hc:    &http.Client{Timeout: 60 * time.Second},
		log:   logger,
	}, nil
}

// envelope mirrors the API's response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type listPayload struct {
	Items []map[string]any `json:"items"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, int, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*envelope, int, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%s %s: non-JSON response (status %d)", req.Method, req.URL.Path, resp.StatusCode)
	}
	return &env, resp.StatusCode, nil
}

// legacyPageSize matches the server's per-request row cap.
const legacyPageSize = 100

// FetchLegacy pulls raw legacy course documents, walking the endpoint
// page by page on the _id cursor. limit <= 0 fetches the whole
// collection; the server caps each request, never the total.
func (c *Client) FetchLegacy(ctx context.Context, limit int) ([]map[string]any, error) {
	var out []map[string]any
	after := ""
	for {
		pageLimit := legacyPageSize
		if limit > 0 && limit-len(out) < pageLimit {
			pageLimit = limit - len(out)
		}
		q := url.Values{"limit": {strconv.Itoa(pageLimit)}}
		if after != "" {
			q.Set("after", after)
		}
		env, status, err := c.get(ctx, "/api/v1/legacy-courses", q)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK || !env.Success {
			return nil, fmt.Errorf("fetch legacy courses: status %d: %s", status, env.Error)
		}
		var pl listPayload
		if err := json.Unmarshal(env.Data, &pl); err != nil {
			return nil, err
		}
		out = append(out, pl.Items...)

		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
		if len(pl.Items) < pageLimit {
			return out, nil
		}
		last, ok := pl.Items[len(pl.Items)-1]["_id"].(string)
		if !ok || last == "" {
			return nil, fmt.Errorf("legacy page has no _id to continue from")
		}
		after = last
	}
}

// FetchCourses pulls up to limit new-model courses of one type as raw
// documents, for field-set analysis.
func (c *Client) FetchCourses(ctx context.Context, courseType string, limit int) ([]map[string]any, error) {
	q := url.Values{
		"course_type": {courseType},
		"limit":       {strconv.Itoa(limit)},
	}
	env, status, err := c.get(ctx, "/api/v1/tcourse", q)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !env.Success {
		return nil, fmt.Errorf("fetch %s courses: status %d: %s", courseType, status, env.Error)
	}
	var pl listPayload
	if err := json.Unmarshal(env.Data, &pl); err != nil {
		return nil, err
	}
	return pl.Items, nil
}

// SlugExists reports whether a course with the slug already exists in
// the new collection. Used to skip legacy docs on reruns.
func (c *Client) SlugExists(ctx context.Context, slug string) (bool, error) {
	env, status, err := c.get(ctx, "/api/v1/tcourse/slug/"+url.PathEscape(slug), nil)
	if err != nil {
		return false, err
	}
	switch status {
	case http.StatusOK:
		return env.Success, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("check slug %q: status %d: %s", slug, status, env.Error)
	}
}

// CreateCourse posts a mapped payload to the new API and returns the
// created course id.
func (c *Client) CreateCourse(ctx context.Context, payload map[string]any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/v1/tcourse", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	env, status, err := c.do(req)
	if err != nil {
		return "", err
	}
	if status != http.StatusCreated || !env.Success {
		return "", fmt.Errorf("create course: status %d: %s", status, env.Error)
	}
	var created struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}
