// Package client talks to a remote portal REST API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/service"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal api: %s", http.StatusText(e.Code))
	}
	return fmt.Sprintf("portal api: %d: %s", e.Code, e.Message)
}

// Client implements the kiosk backend over HTTP.
type Client struct {
	base *url.URL
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New returns a client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse api url: unsupported scheme %q", u.Scheme)
	}
	c := &Client{base: u, http: &http.Client{Timeout: 10 * time.Second}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ContactSettings(ctx context.Context) (repository.ContactSettings, error) {
	var out repository.ContactSettings
	err := c.do(ctx, http.MethodGet, "/api/contact-us", nil, &out)
	return out, err
}

// SubmitFeedback posts f. A 400 response is reported as
// service.ErrMissingFields.
func (c *Client) SubmitFeedback(ctx context.Context, f repository.Feedback) (repository.Feedback, error) {
	req := map[string]string{
		"name":    f.Name,
		"email":   f.Email,
		"mobile":  f.Mobile,
		"message": f.Message,
	}
	var out struct {
		Feedback repository.Feedback `json:"feedback"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/feedback", req, &out); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusBadRequest {
			return repository.Feedback{}, fmt.Errorf("%w: %s", service.ErrMissingFields, se.Message)
		}
		return repository.Feedback{}, err
	}
	return out.Feedback, nil
}

func (c *Client) ListFeedback(ctx context.Context) ([]repository.Feedback, error) {
	var out []repository.Feedback
	err := c.do(ctx, http.MethodGet, "/api/feedback", nil, &out)
	return out, err
}

func (c *Client) ListBanners(ctx context.Context) ([]repository.HomepageBanner, error) {
	var out struct {
		Banners []repository.HomepageBanner `json:"banners"`
	}
	err := c.do(ctx, http.MethodGet, "/api/admin/homepage-banners", nil, &out)
	return out.Banners, err
}

// ActiveBanners returns active banners with an image, oldest first, matching
// what the local service returns.
func (c *Client) ActiveBanners(ctx context.Context) ([]repository.HomepageBanner, error) {
	all, err := c.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	var out []repository.HomepageBanner
	for _, b := range all {
		if b.IsActive && b.Banner != nil && *b.Banner != "" {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (c *Client) ToggleBanner(ctx context.Context, id string) (repository.HomepageBanner, error) {
	var out struct {
		Banner repository.HomepageBanner `json:"banner"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/admin/homepage-banners/"+url.PathEscape(id)+"/toggle-status", nil, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return repository.HomepageBanner{}, fmt.Errorf("banner %s: %w", id, service.ErrNotFound)
		}
	}
	return out.Banner, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	se := &StatusError{Code: resp.StatusCode}
	if json.Unmarshal(data, &payload) == nil {
		se.Message = payload.Message
		if se.Message == "" {
			se.Message = payload.Error
		}
	}
	return se
}
