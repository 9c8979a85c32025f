// Package client resolves students and courses held by peer services over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound means the peer answered 404 for the requested identifier.
	ErrNotFound = errors.New("remote resource not found")
	// ErrInvalid means the peer refused the identifier with 400 or 422.
	ErrInvalid = errors.New("remote service rejected the request")
	// ErrUnavailable covers every other failure: transport errors, timeouts,
	// other non-2xx statuses and bodies that cannot be decoded.
	ErrUnavailable = errors.New("remote service unavailable")
)

// RejectionError carries the message a peer returned alongside a 400 or 422.
// It matches ErrInvalid.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("rejected with status %d: %s", e.Status, e.Message)
}

func (e *RejectionError) Unwrap() error { return ErrInvalid }

// Outcome labels reported to the Observer.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
)

// Observer receives the duration and outcome of each remote call.
type Observer interface {
	ObserveUpstream(upstream, outcome string, duration time.Duration)
}

// resourceClient fetches single JSON resources from GET {baseURL}/{collection}/{id}.
type resourceClient struct {
	upstream   string
	baseURL    string
	collection string
	http       *http.Client
	metrics    Observer
	logger     *zap.Logger
}

func newResourceClient(upstream, baseURL, collection string, timeout time.Duration, metrics Observer, logger *zap.Logger) resourceClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return resourceClient{
		upstream:   upstream,
		baseURL:    baseURL,
		collection: collection,
		http:       &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

func (c resourceClient) get(ctx context.Context, id string, dest interface{}) error {
	start := time.Now()
	outcome, err := c.fetch(ctx, id, dest)
	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.ObserveUpstream(c.upstream, outcome, elapsed)
	}
	c.logger.Debug("upstream lookup",
		zap.String("upstream", c.upstream),
		zap.String("id", id),
		zap.String("outcome", outcome),
		zap.Duration("latency", elapsed),
		zap.Error(err),
	)
	return err
}

func (c resourceClient) fetch(ctx context.Context, id string, dest interface{}) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, c.collection, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return OutcomeUnavailable, fmt.Errorf("%s: build request: %v: %w", c.upstream, err, ErrUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return OutcomeUnavailable, fmt.Errorf("%s: %v: %w", c.upstream, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return OutcomeNotFound, fmt.Errorf("%s %s: %w", c.collection, id, ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return OutcomeInvalid, fmt.Errorf("%s %s: %w", c.collection, id, rejection(resp))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return OutcomeUnavailable, fmt.Errorf("%s: unexpected status %d: %w", c.upstream, resp.StatusCode, ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return OutcomeUnavailable, fmt.Errorf("%s: decode %s: %v: %w", c.upstream, c.collection, err, ErrUnavailable)
	}
	return OutcomeOK, nil
}

func rejection(resp *http.Response) *RejectionError {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &RejectionError{Status: resp.StatusCode, Message: body.Message}
}
