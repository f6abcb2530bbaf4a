// Package client is a typed HTTP client for the city events API. It backs the
// browse view, the favorites reconciler and the editor dashboard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/browse"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/editor"
	"github.com/Misha2007/smart-city-event-map/internal/favorites"
	"github.com/Misha2007/smart-city-event-map/internal/handler/dto"
	"github.com/wb-go/wbf/retry"
)

const maxErrorBody = 4 << 10

var (
	_ browse.EventSource = (*Client)(nil)
	_ favorites.Store    = (*Client)(nil)
	_ editor.Backend     = (*Client)(nil)
)

// StatusError is a non-2xx response. It unwraps to domain.ErrNetwork and, for
// statuses with a domain meaning, to that error too.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Code)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() []error {
	errs := []error{domain.ErrNetwork}
	switch e.Code {
	case http.StatusUnauthorized:
		errs = append(errs, domain.ErrUnauthorized)
	case http.StatusForbidden:
		errs = append(errs, domain.ErrForbidden)
	case http.StatusNotFound:
		errs = append(errs, domain.ErrEventNotFound)
	case http.StatusBadRequest:
		errs = append(errs, domain.ErrValidation)
	}
	return errs
}

type Option func(*Client)

// WithToken authenticates every request with a bearer session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetry overrides the retry strategy used for reads.
func WithRetry(s retry.Strategy) Option {
	return func(c *Client) { c.strategy = s }
}

type Client struct {
	base     *url.URL
	http     *http.Client
	token    string
	strategy retry.Strategy
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:     u,
		http:     NewHTTPClient(10 * time.Second),
		strategy: retry.Strategy{Attempts: 3, Delay: 200 * time.Millisecond, Backoff: 2},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.strategy.Attempts < 1 {
		c.strategy.Attempts = 1
	}
	return c, nil
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

func (c *Client) ListEvents(ctx context.Context, f domain.EventFilters) ([]domain.Event, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.DateRange != "" {
		q.Set("dateRange", string(f.DateRange))
	}

	var events []domain.Event
	if err := c.get(ctx, "/api/events", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	var e domain.Event
	if err := c.get(ctx, "/api/events/"+url.PathEscape(id), nil, &e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListFavoriteIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	if err := c.get(ctx, "/api/me/favorites/ids", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) AddFavorite(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodPut, "/api/me/favorites/"+url.PathEscape(eventID), nil, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/api/me/favorites/"+url.PathEscape(eventID), nil, nil)
}

func (c *Client) ListAdminEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.get(ctx, "/api/admin/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, rec domain.EventRecord) (domain.Event, error) {
	var e domain.Event
	if err := c.do(ctx, http.MethodPost, "/api/admin/events", toRequest(rec), &e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, rec domain.EventRecord) (domain.Event, error) {
	var e domain.Event
	if err := c.do(ctx, http.MethodPut, "/api/admin/events/"+url.PathEscape(id), toRequest(rec), &e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/events/"+url.PathEscape(id), nil, nil)
}

func toRequest(rec domain.EventRecord) dto.EventRequest {
	lat, lng := rec.Latitude, rec.Longitude
	req := dto.EventRequest{
		Title:        rec.Title,
		Description:  rec.Description,
		CategoryID:   rec.CategoryID,
		LocationName: rec.LocationName,
		Latitude:     &lat,
		Longitude:    &lng,
		StartDate:    rec.StartDate.UTC().Format(time.RFC3339),
		ImageURL:     rec.ImageURL,
		WebsiteURL:   rec.WebsiteURL,
		ContactInfo:  rec.ContactInfo,
	}
	if rec.EndDate != nil {
		end := rec.EndDate.UTC().Format(time.RFC3339)
		req.EndDate = &end
	}
	return req
}

// get retries transport failures and 5xx responses. Other statuses are
// returned after the first attempt.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.endpoint(path, q)

	var last error
	err := retry.DoContext(ctx, c.strategy, func() error {
		last = c.send(ctx, http.MethodGet, u, nil, out)
		var se *StatusError
		if errors.As(last, &se) && se.Code < http.StatusInternalServerError {
			return nil
		}
		return last
	})
	if err != nil {
		return err
	}
	return last
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, c.endpoint(path, nil), body, out)
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (c *Client) send(ctx context.Context, method, u string, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrNetwork, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body dto.ErrorResponse
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	return &StatusError{Code: resp.StatusCode, Message: msg}
}
