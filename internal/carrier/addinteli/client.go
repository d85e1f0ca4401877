package addinteli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/mexared/carrier-gateway/internal/domain/errors"
	"github.com/mexared/carrier-gateway/internal/infrastructure/config"
	"github.com/mexared/carrier-gateway/internal/metrics"
)

const (
	userAgent              = "mexared/1.0"
	defaultRequestTimeout  = 10 * time.Second
	defaultRetryTotal      = 3
	defaultRateLimitRPS    = 10
	backoffInitialInterval = 500 * time.Millisecond
)

// Statuses retried as transient. Everything else 4xx/5xx is terminal.
var retryableStatus = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client is the authenticated session against the Addinteli API. It is
// constructed once per process, owns the connection pool and retry policy,
// and is safe for concurrent use. Mode is fixed at construction.
type Client struct {
	mode          string
	baseURL       string
	token         string
	distributorID string
	walletID      string
	retryTotal    int
	retryInterval time.Duration

	httpClient *http.Client
	limiter    *rate.Limiter
	audit      *AuditLogger
	logger     *zap.Logger
	metrics    *metrics.Registry
}

// Option configures optional collaborators on a Client.
type Option func(*Client)

// WithMetrics attaches a Prometheus registry to the client.
func WithMetrics(reg *metrics.Registry) Option {
	return func(c *Client) { c.metrics = reg }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New resolves the configured mode to a base URL and bearer token and builds
// the shared client session. Missing configuration fails here, before any
// request is attempted.
func New(cfg config.AddinteliConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	ep, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	retryTotal := cfg.RetryTotal
	if retryTotal <= 0 {
		retryTotal = defaultRetryTotal
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = defaultRateLimitRPS
	}

	c := &Client{
		mode:          cfg.Mode,
		baseURL:       strings.TrimRight(ep.BaseURL, "/"),
		token:         ep.Token,
		distributorID: cfg.DistributorID,
		walletID:      cfg.WalletID,
		retryTotal:    retryTotal,
		retryInterval: backoffInitialInterval,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps*2),
		audit:   NewAuditLogger(logger),
		logger:  logger.Named("addinteli"),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Mode returns the mode the session was bound to at construction.
func (c *Client) Mode() string {
	return c.mode
}

// Get performs a GET request against the carrier API.
func (c *Client) Get(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// Post performs a POST request against the carrier API.
func (c *Client) Post(ctx context.Context, endpoint string, payload interface{}) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodPost, endpoint, payload)
}

// Put performs a PUT request against the carrier API.
func (c *Client) Put(ctx context.Context, endpoint string, payload interface{}) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodPut, endpoint, payload)
}

// Delete performs a DELETE request against the carrier API.
func (c *Client) Delete(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil)
}

// do issues one carrier call: build, send, retry transient failures with
// exponential backoff, verify the response contract, translate structured
// carrier errors. Exactly one audit record is emitted per completed call.
func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}) (map[string]interface{}, error) {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.NewInternalError("serializing request payload").WithCause(err)
		}
		body = b
	}

	start := time.Now()
	var result map[string]interface{}
	lastStatus := 0
	attempts := 0

	operation := func() error {
		attempts++
		if attempts > 1 && c.metrics != nil {
			c.metrics.ObserveRetry(endpoint)
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(apperrors.NewInternalError("rate limiter interrupted").WithCause(err))
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		// Pagination links come back as absolute URLs.
		url := c.baseURL + endpoint
		if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
			url = endpoint
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return backoff.Permanent(apperrors.NewInternalError("building request").WithCause(err))
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastStatus = 0
			return apperrors.NewTransientError(fmt.Sprintf("request failed: %v", err)).WithCause(err)
		}
		defer resp.Body.Close()

		lastStatus = resp.StatusCode
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.NewTransientError(fmt.Sprintf("reading response: %v", err)).WithCause(err)
		}

		if retryableStatus[resp.StatusCode] {
			return apperrors.NewTransientError(fmt.Sprintf("carrier returned HTTP %d", resp.StatusCode))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(translateFailure(resp.StatusCode, raw))
		}

		// A 2xx with a non-JSON content type is a contract violation, not
		// transience. Never retried.
		if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
			return backoff.Permanent(apperrors.NewAPIError(
				fmt.Sprintf("unexpected response format: %s", ct), resp.StatusCode))
		}

		if err := json.Unmarshal(raw, &result); err != nil {
			return backoff.Permanent(apperrors.NewAPIError(
				fmt.Sprintf("malformed JSON response: %v", err), resp.StatusCode))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.retryTotal-1)), ctx)

	err := backoff.Retry(operation, policy)
	elapsed := time.Since(start)

	if c.metrics != nil {
		c.metrics.ObserveRequest(endpoint, lastStatus, elapsed)
	}

	payloadMap := decodePayload(body)

	if err != nil {
		appErr := classifyFinal(err, lastStatus)
		record := map[string]interface{}{
			"endpoint":      endpoint,
			"method":        method,
			"status_code":   lastStatus,
			"error_message": appErr.Message,
		}
		if appErr.CarrierCode != 0 {
			record["error_code"] = appErr.CarrierCode
		}
		c.audit.LogRequest(endpoint, method, payloadMap, lastStatus, record, elapsed)
		return nil, appErr
	}

	c.audit.LogRequest(endpoint, method, payloadMap, lastStatus, result, elapsed)
	return result, nil
}

// translateFailure maps a terminal carrier response onto an AppError. When
// the body carries a structured {error_code, message} shape the catalog
// message replaces the transport summary and the code travels with the error.
func translateFailure(status int, raw []byte) *apperrors.AppError {
	var envelope struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.ErrorCode != 0 {
		return apperrors.NewAPIError(TranslateError(envelope.ErrorCode), status).
			WithCarrierCode(envelope.ErrorCode)
	}
	return apperrors.NewAPIError(fmt.Sprintf("carrier returned HTTP %d", status), status)
}

// classifyFinal turns the error left after the retry loop into the terminal
// failure surfaced to the caller. Exhausted transient failures become
// terminal API errors carrying the last attempt's summary.
func classifyFinal(err error, lastStatus int) *apperrors.AppError {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return apperrors.NewAPIError(fmt.Sprintf("carrier call failed: %v", err), lastStatus).WithCause(err)
	}
	if appErr.Type == apperrors.ErrorTypeTransient {
		return apperrors.NewAPIError(appErr.Message, lastStatus).WithCause(appErr)
	}
	return appErr
}

func decodePayload(body []byte) map[string]interface{} {
	if len(body) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return nil
	}
	return m
}
