package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sangkips/kasir/internal/config"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
	"github.com/sangkips/kasir/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// IdempotencyKeyHeader is sent on writes that must not be applied twice
	IdempotencyKeyHeader = "Idempotency-Key"
	// RequestIDHeader correlates gateway and server logs
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 8 << 20
)

// Envelope is the wrapper every server response uses
type Envelope struct {
	Success    *bool                  `json:"success"`
	Message    string                 `json:"message,omitempty"`
	Data       json.RawMessage        `json:"data,omitempty"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
}

// HasData reports whether the server sent a non-null data field
func (e *Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Client is the single authenticated entry point to the store server
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// Options configures a Client
type Options struct {
	BaseURL           string
	Secret            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	// Transport is the underlying round tripper; http.DefaultTransport when nil
	Transport http.RoundTripper
}

// OptionsFromConfig maps the API section of the config
func OptionsFromConfig(cfg *config.APIConfig) Options {
	return Options{
		BaseURL:           cfg.BaseURL,
		Secret:            cfg.Secret,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}
}

// NewClient creates a client whose every request carries
// "Authorization: Bearer <secret>".
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, apperror.NewRequiredError("api base url")
	}
	if strings.TrimSpace(opts.Secret) == "" {
		return nil, apperror.NewRequiredError("api secret")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: invalid base url %q: %w", opts.BaseURL, err)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Secret, TokenType: "Bearer"})

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport: &oauth2.Transport{Source: tokens, Base: transport},
			Timeout:   opts.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// RequestOption adjusts an outgoing request
type RequestOption func(*http.Request)

// WithIdempotencyKey attaches an Idempotency-Key header
func WithIdempotencyKey(key string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(IdempotencyKeyHeader, key)
	}
}

// Get is the fetch primitive: a GET whose body must be a success envelope.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.Send(ctx, http.MethodGet, path, query, nil)
}

// Send issues a JSON request. body is marshaled when non-nil.
func (c *Client) Send(ctx context.Context, method, path string, query url.Values, body interface{}, opts ...RequestOption) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	status, raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(status, raw)
}

// Upload posts a multipart form with a single file field. The content type
// is left to the multipart writer so the boundary is correct.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("api: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("api: read upload %s: %w", filename, err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("api: close form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	status, raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, apperror.NewUnauthorizedError(messageOf(raw))
	}
	if !json.Valid(raw) {
		return nil, apperror.NewUnreadableResponseError(status, nil)
	}
	if status < 200 || status > 299 {
		return nil, apperror.NewServerError(status, messageOf(raw))
	}
	return raw, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, utils.NewRequestID())
	return req, nil
}

// do sends the request and reads the whole body. Only transport failures are
// returned as errors; status handling is left to the caller.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return 0, nil, apperror.NewNetworkError(err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[api] [%s] %s %s | error | %v", utils.ShortID(req.Header.Get(RequestIDHeader)), req.Method, req.URL.Path, err)
		return 0, nil, apperror.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, apperror.NewNetworkError(err)
	}

	log.Printf("[api] [%s] %s %s | %d | %v",
		utils.ShortID(req.Header.Get(RequestIDHeader)),
		req.Method,
		req.URL.Path,
		resp.StatusCode,
		time.Since(start),
	)
	return resp.StatusCode, raw, nil
}

// decodeEnvelope validates the envelope once so callers never see a
// half-filled success.
func decodeEnvelope(status int, raw []byte) (*Envelope, error) {
	var env Envelope
	parseErr := json.Unmarshal(raw, &env)

	if status == http.StatusUnauthorized {
		if parseErr != nil {
			return nil, apperror.NewUnauthorizedError("")
		}
		return nil, apperror.NewUnauthorizedError(env.Message)
	}
	if parseErr != nil {
		// No JSON structure is assumed for a non-2xx body either
		return nil, apperror.NewUnreadableResponseError(status, parseErr)
	}
	if status < 200 || status > 299 {
		return nil, apperror.NewServerError(status, env.Message)
	}
	if env.Success == nil {
		return nil, apperror.NewUnreadableResponseError(status, errors.New("envelope has no success field"))
	}
	if !*env.Success {
		return nil, apperror.NewServerError(status, env.Message)
	}

	env.Pagination.Normalize()
	return &env, nil
}

// messageOf pulls "message" out of a JSON body, if there is one
func messageOf(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
