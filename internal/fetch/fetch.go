package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/garden-planner/internal/common"
)

// Fetcher retrieves the body of a URL. Implementations decide how the call is
// made (blocking client, breaker, stub); callers only see the bytes or an error
// wrapping common.ErrFetch.
type Fetcher interface {
	Fetch(ctx context.Context, url string, header http.Header) ([]byte, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string, header http.Header) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string, header http.Header) ([]byte, error) {
	return f(ctx, url, header)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: GET %s returned HTTP %d", common.ErrFetch, e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return common.ErrFetch }

var (
	errNoHTTPClient = errors.New("http client not configured")
	errCircuitOpen  = errors.New("circuit breaker open")
)

// HTTPFetcher issues a single GET per call through a circuit breaker. Transport
// failures and 5xx responses count against the breaker; other statuses are
// returned to the caller as StatusError without tripping it.
type HTTPFetcher struct {
	name    string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewHTTPFetcher creates a fetcher named after the upstream it talks to.
func NewHTTPFetcher(name string, client *http.Client) *HTTPFetcher {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("fetch: breaker %s changed %s -> %s", name, from, to)
		},
	})

	return &HTTPFetcher{
		name:    name,
		client:  client,
		circuit: cb,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string, header http.Header) ([]byte, error) {
	if f.client == nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetch, errNoHTTPClient)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetch, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	result, err := f.circuit.Execute(func() (interface{}, error) {
		resp, execErr := f.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s %v", common.ErrFetch, f.name, errCircuitOpen)
		}
		var se *StatusError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, fmt.Errorf("%w: GET %s: %v", common.ErrFetch, url, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result type from circuit breaker", common.ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrFetch, url, err)
	}
	return body, nil
}
