// Package gateway is the single normalization boundary between the UI
// and the jobs/recommendations backend. Every call resolves to a
// Result; transport errors, bad statuses and malformed payloads never
// escape as Go errors to page handlers.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/observability/metrics"
	"github.com/wostup/wostup-go/internal/app/session"
	"github.com/wostup/wostup-go/internal/pkg/config"
)

const maxResponseBytes = 4 << 20

// Result is the uniform outcome of every backend call. Exactly one of
// Data/Err is meaningful, discriminated by Success.
type Result[T any] struct {
	Success bool
	Data    T
	Err     string
}

// Client talks to the backend REST API rooted at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type request struct {
	method string
	body   any
	header http.Header
}

type Option func(*request)

func WithMethod(method string) Option {
	return func(r *request) { r.method = method }
}

func WithBody(body any) Option {
	return func(r *request) { r.body = body }
}

func WithHeader(key, value string) Option {
	return func(r *request) { r.header.Set(key, value) }
}

// envelope matches backends that wrap payloads in a data/error object.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// Fetch performs one backend call and collapses every failure mode
// into Result.Err. When a signed-in user is on the context, their id
// rides along as X-User-ID for personalized endpoints; the session is
// only ever read here, never written.
func Fetch[T any](ctx context.Context, c *Client, path string, opts ...Option) Result[T] {
	req := &request{method: http.MethodGet, header: http.Header{}}
	for _, opt := range opts {
		opt(req)
	}

	tracer := otel.Tracer("wostup-gateway")
	ctx, span := tracer.Start(ctx, "Gateway.Fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", req.method),
		attribute.String("backend.path", path),
	)
	if m := metrics.Maybe(); m != nil {
		m.GatewayRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("method", req.method)))
	}

	var bodyReader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return failure[T](ctx, c, span, errors.Wrap(err, "encoding request body"), "could not encode request")
		}
		bodyReader = bytes.NewReader(raw)
		req.header.Set("Content-Type", "application/json")
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+path, bodyReader)
	if err != nil {
		return failure[T](ctx, c, span, errors.Wrap(err, "building request"), "invalid request")
	}
	httpReq.Header = req.header
	httpReq.Header.Set("Accept", "application/json")
	if user := session.UserFromContext(ctx); user != nil {
		httpReq.Header.Set("X-User-ID", user.ID)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return failure[T](ctx, c, span, errors.Wrap(err, "calling backend"), "backend unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return failure[T](ctx, c, span, errors.Wrap(err, "reading response"), "backend response could not be read")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("backend returned %s", resp.Status)
		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.Error != "" {
			msg = env.Error
		}
		span.SetStatus(codes.Error, msg)
		if m := metrics.Maybe(); m != nil {
			m.GatewayErrorsTotal.Add(ctx, 1)
		}
		c.logger.Warn("Backend call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return Result[T]{Success: false, Err: msg}
	}

	var data T
	if len(bytes.TrimSpace(raw)) == 0 {
		span.SetStatus(codes.Ok, "empty body")
		return Result[T]{Success: true, Data: data}
	}

	// Payloads arrive either bare or under a data envelope; accept both.
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return failure[T](ctx, c, span, errors.Wrap(err, "decoding response"), "backend sent an unexpected response")
	}

	span.SetStatus(codes.Ok, "")
	return Result[T]{Success: true, Data: data}
}

func failure[T any](ctx context.Context, c *Client, span trace.Span, err error, msg string) Result[T] {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	if m := metrics.Maybe(); m != nil {
		m.GatewayErrorsTotal.Add(ctx, 1)
	}
	c.logger.Warn("Gateway failure", zap.Error(err))
	return Result[T]{Success: false, Err: fmt.Sprintf("%s: %v", msg, errors.Cause(err))}
}
