// Package sonar talks to the SonarQube web API.
package sonar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ruminaider/sonar-select/internal/catalog"
)

// DefaultPageSize is the number of projects requested per page.
const DefaultPageSize = 100

const searchProjectsPath = "/api/components/search_projects"

// Sentinel errors for authentication failures.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// StatusError is a non-2xx response other than 401/403.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %s", e.Status)
}

// IsAuthError reports whether err is a 401 or 403 from the server.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// Client is an HTTP client for a SonarQube server.
type Client struct {
	BaseURL  string
	Token    string
	PageSize int
	HTTP     *http.Client
	Logger   *slog.Logger
}

// New creates a client. A trailing slash on baseURL is dropped.
func New(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		Token:    token,
		PageSize: DefaultPageSize,
		HTTP:     &http.Client{},
		Logger:   logger,
	}
}

// Paging is the pagination block of a search response.
type Paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

// SearchProjectsResponse is one page of GET /api/components/search_projects.
type SearchProjectsResponse struct {
	Components []catalog.Entry `json:"components"`
	Paging     *Paging         `json:"paging"`
}

// ErrMalformedPage is returned by SearchProjects when the body is not JSON
// or lacks the components or paging fields.
var ErrMalformedPage = errors.New("unexpected search_projects response")

// SearchProjects fetches a single 1-based page.
func (c *Client) SearchProjects(ctx context.Context, page int) (*SearchProjectsResponse, error) {
	q := url.Values{}
	q.Set("p", strconv.Itoa(page))
	q.Set("ps", strconv.Itoa(c.PageSize))
	u := c.BaseURL + searchProjectsPath + "?" + q.Encode()

	c.Logger.Debug("calling SonarQube API", "url", u)

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp SearchProjectsResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Components == nil || resp.Paging == nil {
		c.Logger.Debug("malformed response", "page", page, "body", string(body))
		return nil, fmt.Errorf("%w (page %d)", ErrMalformedPage, page)
	}
	return &resp, nil
}

// FetchAll retrieves every project, one page at a time, until the number
// collected reaches the total the server reports.
//
// A malformed page ends the loop and returns what was collected so far with
// a nil error. Any HTTP or network failure aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Entry, error) {
	var entries []catalog.Entry
	total := 0

	for page := 1; ; page++ {
		resp, err := c.SearchProjects(ctx, page)
		if errors.Is(err, ErrMalformedPage) {
			c.Logger.Debug("stopping fetch early", "collected", len(entries), "err", err)
			return entries, nil
		}
		if err != nil {
			return nil, err
		}

		entries = append(entries, resp.Components...)
		total = resp.Paging.Total

		if len(entries) >= total {
			return entries, nil
		}
		// An empty page can never close the gap to an over-reported total.
		if len(resp.Components) == 0 {
			c.Logger.Debug("empty page before total reached", "page", page, "collected", len(entries), "total", total)
			return entries, nil
		}
	}
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.Logger.Debug("error response", "status", resp.StatusCode, "body", string(body))
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: HTTP %s", ErrUnauthorized, resp.Status)
		case http.StatusForbidden:
			return nil, fmt.Errorf("%w: HTTP %s", ErrForbidden, resp.Status)
		default:
			return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
		}
	}
	return body, nil
}
