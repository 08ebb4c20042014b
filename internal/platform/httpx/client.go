package httpx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"trip-scheduler-service/internal/domain"
)

// ErrOffline is returned by a pre-flight connectivity check, before any
// attempt is made and without consuming the retry budget.
var ErrOffline = errors.New("no network connectivity")

// StatusError preserves a non-2xx response for error classification.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// Client wraps outbound calls with a per-attempt timeout, a bounded retry
// budget and a growing backoff delay. Transient failures (network errors,
// timeouts, 429 and 5xx responses) are retried; other failures are not.
//
// The zero-value-adjacent defaults come from New. Sleep and Online are
// injectable so tests can run with zero delay and a simulated offline
// environment.
type Client struct {
	session *http.Client

	// BaseDelay scales the wait before retry n as BaseDelay * n.
	BaseDelay time.Duration

	// Sleep waits for d or until ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error

	// Online, when set, is consulted before the first attempt; reporting
	// false fails the call immediately with ErrOffline.
	Online func() bool

	// OnRetry, when set, is invoked once per retried attempt (metrics hook).
	OnRetry func()
}

// New returns a Client with a 10s per-attempt timeout and 200ms base delay.
func New() *Client {
	return &Client{
		session:   &http.Client{Timeout: 10 * time.Second},
		BaseDelay: 200 * time.Millisecond,
		Sleep:     sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// Do executes a request built by makeReq, retrying transient failures up to
// extraAttempts additional times. The request is rebuilt per attempt since
// a consumed body cannot be replayed.
func (c *Client) Do(
	ctx context.Context,
	extraAttempts int,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	if c.Online != nil && !c.Online() {
		return nil, ErrOffline
	}

	maxAttempts := 1 + extraAttempts
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !Retryable(err) || attempt == maxAttempts {
			return nil, lastErr
		}

		if c.OnRetry != nil {
			c.OnRetry()
		}

		if err := c.Sleep(ctx, c.BaseDelay*time.Duration(attempt)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

// Retryable reports whether a failed attempt is worth repeating.
func Retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded)
}

// Classify maps a transport-level failure onto the domain failure taxonomy.
func Classify(err error) domain.FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.FailureTimeout
	}
	return domain.FailureNetwork
}
