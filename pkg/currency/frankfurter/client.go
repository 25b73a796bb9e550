// Package frankfurter is a client for the Frankfurter currency exchange
// rate API (https://frankfurter.dev). The API is free and needs no key.
package frankfurter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ethauvin/frankfurter-go/pkg/retry"
	"github.com/ethauvin/frankfurter-go/pkg/retry/backoff"
)

const (
	defaultBaseURL = "https://api.frankfurter.dev/v1/"

	// EUR is the API's default base currency.
	EUR = "EUR"
)

// MinDate is the earliest date the API has data for.
var MinDate = NewDate(1994, time.January, 4)

// ValidateDate checks that a date is usable in a request: set, and not
// before MinDate.
func ValidateDate(date Date) error {
	if date.IsZero() {
		return errors.New("a valid date is required")
	}
	if date.Before(MinDate.Time) {
		return errors.Errorf("dates prior to %s are not supported: %s", MinDate, date)
	}
	return nil
}

// Client talks to the Frankfurter API. Use Latest and Series for rate
// requests and Currencies for the supported currency list. The zero value
// is not usable; construct with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retrier    retry.Retrier
	limiter    *rate.Limiter
	log        *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, commonly a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit throttles outbound requests to the given number per second.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithRetrier replaces the default retry policy.
func WithRetrier(retrier retry.Retrier) Option {
	return func(c *Client) {
		c.retrier = retrier
	}
}

// NewClient returns a ready to use API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		retrier: retry.NewRetrier(
			retry.NonRetriableErrors(context.Canceled),
			retry.Limit(3),
			retry.BackoffWithJitter(backoff.BinaryExponential(time.Second), 10*time.Second, 0.1),
		),
		log: logrus.StandardLogger().WithField("type", "currency/frankfurter/client"),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Currencies fetches the map of supported currency symbols to their full
// names. It satisfies currency.Lister, so it can drive Registry.Refresh.
func (c *Client) Currencies(ctx context.Context) (map[string]string, error) {
	currencies := make(map[string]string)
	if err := c.get(ctx, "currencies", nil, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	c.log.WithField("url", requestURL).Trace("fetching")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	var httpResp *http.Response
	_, err = c.retrier.Retry(
		func() error {
			httpResp, err = c.httpClient.Do(req)
			return err
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to make request")
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return c.errorFromResponse(httpResp, requestURL)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response, requestURL string) error {
	httpErr := &HTTPError{
		StatusCode: resp.StatusCode,
		URL:        requestURL,
	}

	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		httpErr.Message = body.Message
	}
	return httpErr
}
