package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// ErrSessionExpired marks a 401 response. The transport has already
// purged the session by the time a caller sees it.
var ErrSessionExpired = errors.New("session expired")

// Failure is a non-2xx response carrying the server's message.
type Failure struct {
	Status  int
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Envelope is the uniform response wrapper every endpoint returns.
// Data stays raw; services decode it into their own entity type.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// Client is the single HTTP wrapper all resource services call through.
// Every call is a single attempt: no retries, no timeouts, no
// deduplication of concurrent requests.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	session          SessionStore
	onSessionExpired func()
}

type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionExpiredHook registers the forced-logout callback fired on
// any 401, after the session has been cleared.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New builds a Client rooted at baseURL, which includes the API prefix,
// e.g. "https://host/api".
func New(baseURL string, session SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*Envelope, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.execute(req)
}

// Upload sends a single file as multipart/form-data under the "file"
// field, used by maintenance attachment uploads.
func (c *Client) Upload(ctx context.Context, path, fileName string, content io.Reader) (*Envelope, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.execute(req)
}

func (c *Client) execute(req *http.Request) (*Envelope, error) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Authentication expiry is a cross-cutting trap, not a per-call
	// error a screen recovers from: purge the session and bail.
	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return nil, ErrSessionExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Failure{Status: resp.StatusCode, Message: serverMessage(raw)}
	}

	env := &Envelope{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, env); err != nil {
			return nil, fmt.Errorf("decode response body: %w", err)
		}
	}
	return env, nil
}

// serverMessage pulls the error text out of a failure body, falling back
// to a generic message when the body is not the expected shape.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "Something went wrong"
}
