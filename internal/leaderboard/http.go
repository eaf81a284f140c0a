package leaderboard

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
)

// ScoresPath is the REST resource served by NewHandler.
const ScoresPath = "/api/scores"

// DefaultHTTPTimeout bounds a single request when no client is supplied.
const DefaultHTTPTimeout = 5 * time.Second

type submitRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPClient talks to a remote leaderboard server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPClient) { h.http = c }
}

// NewHTTPClient creates a client for the server at baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("leaderboard: invalid server URL %q", baseURL)
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SubmitScore posts a score. Names are validated locally before any request.
func (c *HTTPClient) SubmitScore(ctx context.Context, name string, score int) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}

	body, err := json.Marshal(submitRequest{Name: name, Score: score})
	if err != nil {
		return fmt.Errorf("leaderboard: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ScoresPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(resp)
	}
	return nil
}

// FetchTopScores gets the ranked list.
func (c *HTTPClient) FetchTopScores(ctx context.Context, limit int) ([]Entry, error) {
	endpoint := c.baseURL + ScoresPath
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return entries, nil
}

// statusError maps a non-success response to an error. Client errors carry the
// server's message; everything else means the service is unavailable.
func statusError(resp *http.Response) error {
	var body errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}

	if resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrInvalidName, msg)
	}
	return fmt.Errorf("%w: server returned %d: %s", ErrUnavailable, resp.StatusCode, msg)
}
