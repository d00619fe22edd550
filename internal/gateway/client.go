// Package gateway is the single client for the remote hospital-management
// REST API. It normalizes the backend's inconsistent response envelopes,
// classifies failures, and never stores or refreshes the caller's bearer
// token. One HTTP call per operation; no retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/openhms/hospital-portal/internal/observability/metrics"
	"github.com/openhms/hospital-portal/pkg/logging"
)

const defaultTimeout = 20 * time.Second

// Client talks to the hospital API. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	metrics    *metrics.GatewayMetrics
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMetrics attaches request metrics. Nil is tolerated everywhere.
func WithMetrics(m *metrics.GatewayMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithTracer overrides the tracer.
func WithTracer(tr trace.Tracer) Option {
	return func(c *Client) {
		if tr != nil {
			c.tracer = tr
		}
	}
}

// NewClient creates a hospital API client rooted at baseURL.
func NewClient(baseURL string, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
		tracer: otel.Tracer("hms.internal.gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and classifies the outcome. The token is forwarded
// as-is; an empty token still goes out (the backend answers 401, which is
// surfaced as KindAuth for the caller to turn into a login redirect).
func (c *Client) do(ctx context.Context, token, method, path string, payload any, resource, op string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "gateway."+resource+"."+op)
	defer span.End()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Resource: resource, Op: op, Message: "encode request", cause: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Resource: resource, Op: op, cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		span.RecordError(err)
		c.metrics.ObserveRequest(resource, op, "transport_error", elapsed)
		return nil, &Error{Kind: KindTransport, Resource: resource, Op: op, cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		c.metrics.ObserveRequest(resource, op, "transport_error", elapsed)
		return nil, &Error{Kind: KindTransport, Resource: resource, Op: op, cause: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.metrics.ObserveRequest(resource, op, "ok", elapsed)
		return respBody, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.metrics.ObserveRequest(resource, op, "auth_error", elapsed)
		c.metrics.ObserveAuthFailure(resource)
		c.logger.Warn("hospital API rejected token", "resource", resource, "op", op, "status", resp.StatusCode)
		return nil, &Error{Kind: KindAuth, Status: resp.StatusCode, Resource: resource, Op: op, Message: serverMessage(respBody)}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		c.metrics.ObserveRequest(resource, op, "validation_error", elapsed)
		return nil, &Error{Kind: KindValidation, Status: resp.StatusCode, Resource: resource, Op: op, Message: serverMessage(respBody)}
	default:
		c.metrics.ObserveRequest(resource, op, "server_error", elapsed)
		c.logger.Error("hospital API server error", "resource", resource, "op", op, "status", resp.StatusCode)
		return nil, &Error{Kind: KindServer, Status: resp.StatusCode, Resource: resource, Op: op, Message: serverMessage(respBody)}
	}
}

// serverMessage extracts the human-readable message from an error body. The
// backend answers either {"message": ...} or ASP.NET problem details with a
// "title"; raw text is the last resort, truncated for banner display.
func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Title != "" {
			return envelope.Title
		}
	}
	msg := string(bytes.TrimSpace(body))
	if len(msg) > 300 {
		msg = msg[:300]
	}
	return msg
}

// fetchList performs a GET and normalizes whichever envelope comes back.
func fetchList[T any](ctx context.Context, c *Client, token, path, resource, op string) ([]T, error) {
	body, err := c.do(ctx, token, http.MethodGet, path, nil, resource, op)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body, resource), nil
}

// fetchOne performs a GET for a single record.
func fetchOne[T any](ctx context.Context, c *Client, token, path, resource, op string) (T, error) {
	var out T
	body, err := c.do(ctx, token, http.MethodGet, path, nil, resource, op)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("gateway: %s %s: decode response: %w", resource, op, err)
	}
	return out, nil
}
