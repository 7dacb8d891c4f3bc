// Package api is the HTTP client for the carrot backend: login, signup and
// the carrot shop.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sentinel errors for API calls.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrNetwork      = errors.New("network error")
	ErrServer       = errors.New("server error")
)

// DeviceHeader carries the installation's device id on every request.
const DeviceHeader = "X-Device-ID"

// Item is a shop item.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Type     string `json:"item_type"`
	ImageURL string `json:"image_url,omitempty"`
}

// Purchase is the result of buying an item.
type Purchase struct {
	NewBalance int    `json:"new_balance"`
	Message    string `json:"message"`
}

// StatusError is a non-2xx response. It unwraps to the sentinel matching
// its status code.
type StatusError struct {
	Status  int
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v (status %d): %s", e.kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%v (status %d)", e.kind, e.Status)
}

func (e *StatusError) Unwrap() error { return e.kind }

// Client talks to one backend.
type Client struct {
	baseURL  string
	deviceID string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a client for baseURL.
func New(baseURL, deviceID string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		deviceID: deviceID,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for an access token. The request is
// form-encoded; a 401 maps to ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := c.newRequest(ctx, http.MethodPost, "/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("%w: response carried no access token", ErrServer)
	}
	return out.AccessToken, nil
}

// Signup registers a new account. A 400 means the email is taken
// (ErrConflict); a 422 carries the first validation message (ErrValidation).
func (c *Client) Signup(ctx context.Context, email, password string) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/signup/", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ShopItems lists the items for sale.
func (c *Client) ShopItems(ctx context.Context, token string) ([]Item, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/shop/items", nil)
	if err != nil {
		return nil, err
	}
	setBearer(req, token)

	var items []Item
	if err := c.do(req, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Purchase buys itemID with the account's carrots.
func (c *Client) Purchase(ctx context.Context, token string, itemID int) (Purchase, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/v1/shop/purchase", map[string]int{"item_id": itemID})
	if err != nil {
		return Purchase{}, err
	}
	setBearer(req, token)

	var p Purchase
	if err := c.do(req, &p); err != nil {
		return Purchase{}, err
	}
	return p, nil
}

func setBearer(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.deviceID != "" {
		req.Header.Set(DeviceHeader, c.deviceID)
	}
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, v any) (*http.Request, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrServer, err)
	}
	return nil
}

// errorBody covers the error shapes the backend sends: FastAPI's
// {"detail": "..."} or {"detail": [{"msg": "..."}]}, and {"error": "..."}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

func (b errorBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	if len(b.Detail) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(b.Detail, &s) == nil {
		return s
	}
	var list []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(b.Detail, &list) == nil && len(list) > 0 {
		return list[0].Msg
	}
	return ""
}

func statusError(status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	kind := ErrServer
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrUnauthorized
	case http.StatusBadRequest, http.StatusConflict:
		kind = ErrConflict
	case http.StatusUnprocessableEntity:
		kind = ErrValidation
	}
	return &StatusError{Status: status, Message: eb.message(), kind: kind}
}
