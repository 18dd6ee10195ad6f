package utils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around resty.Client exposing all of its methods
// plus the retry and throttle policies shared by the outbound clients.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// RetryOnTooManyRequests retries a request only when it is answered with 429,
// up to count times. Delays grow exponentially from wait with jitter, are
// capped at maxWait, and follow a Retry-After header when one is sent.
// Transport errors and every other status are returned to the caller as is.
func (c *HTTPClient) RetryOnTooManyRequests(count int, wait, maxWait time.Duration) *HTTPClient {
	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(maxWait).
		SetRetryAfter(retryAfterHeader).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r != nil && r.StatusCode() == http.StatusTooManyRequests
		})
	return c
}

// Throttle spaces requests at least interval apart, including retries.
// A non-positive interval disables throttling.
func (c *HTTPClient) Throttle(interval time.Duration) *HTTPClient {
	if interval <= 0 {
		return c
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		return limiter.Wait(r.Context())
	})
	return c
}

// retryAfterHeader returns zero when the header is absent or unparsable,
// which makes resty fall back to its jittered exponential backoff.
func retryAfterHeader(_ *resty.Client, r *resty.Response) (time.Duration, error) {
	if r == nil {
		return 0, nil
	}

	value := r.Header().Get("Retry-After")
	if value == "" {
		return 0, nil
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second, nil
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d, nil
		}
	}

	return 0, nil
}
