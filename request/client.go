package request

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hhatto/rusoto/logger"
)

const tracerName = "github.com/hhatto/rusoto/request"

// Client dispatches service requests over HTTP and buffers the full response.
// It never classifies service-level errors: any response that arrives intact
// is returned as a BufferedResponse regardless of status code, and only
// transport failures surface as errors (always *DispatchError).
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	tracer     trace.Tracer
}

// New creates a request client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log.WithComponent("request"),
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do dispatches a request and returns the buffered response. The returned
// error is always a *DispatchError.
func (c *Client) Do(ctx context.Context, req Request) (*BufferedResponse, error) {
	ctx, span := c.tracer.Start(ctx, spanName(req),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.method", req.Operation),
			attribute.String("http.request.method", req.Method),
		),
	)
	defer span.End()

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	return resp, nil
}

// doWithRetry runs the dispatch loop. Only transport failures are retried.
func (c *Client) doWithRetry(ctx context.Context, req Request) (*BufferedResponse, *DispatchError) {
	retry := c.config.Retry
	if retry == nil {
		return c.dispatch(ctx, req)
	}

	cfg := *retry
	cfg.applyDefaults()

	var lastErr *DispatchError
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, NewTimeoutError(err)
		}

		resp, err := c.dispatch(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !cfg.RetryIf(err) || attempt == cfg.MaxAttempts {
			break
		}

		backoff := cfg.backoffFor(attempt)
		c.log.Warn("retrying dispatch", logger.Fields(
			logger.FieldOperation, req.Operation,
			logger.FieldAttempt, attempt,
			logger.FieldError, err.Error(),
			logger.FieldDuration, backoff.Milliseconds(),
		))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, NewTimeoutError(ctx.Err())
		case <-timer.C:
		}
	}
	return nil, lastErr
}

// dispatch sends a single request and buffers the response.
func (c *Client) dispatch(ctx context.Context, req Request) (*BufferedResponse, *DispatchError) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, doErr := c.httpClient.Do(httpReq)
	if doErr != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(doErr)
		}
		return nil, NewConnectionError(doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, FromIOError(readErr)
	}

	c.log.Debug("dispatched", logger.Fields(
		logger.FieldOperation, req.Operation,
		logger.FieldStatusCode, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return &BufferedResponse{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, *DispatchError) {
	url := req.Path
	if c.config.Endpoint != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.Endpoint, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewDispatchError("create request: " + err.Error())
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	httpReq.Header.Set("Amz-Sdk-Invocation-Id", uuid.NewString())

	return httpReq, nil
}

func spanName(req Request) string {
	if req.Operation != "" {
		return req.Operation
	}
	return req.Method + " " + req.Path
}
