package input

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmylchreest/msgwidget/internal/config"
)

// ErrNotConfigured is returned when the backend URL is missing.
var ErrNotConfigured = errors.New("backend url not configured")

// RESTSource reads the newest message from a PostgREST messages table.
type RESTSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRESTSource creates a RESTSource. A zero timeout means no client timeout.
func NewRESTSource(baseURL, apiKey string, timeout time.Duration) *RESTSource {
	return &RESTSource{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewRESTSourceWithClient creates a RESTSource using a custom HTTP client.
func NewRESTSourceWithClient(baseURL, apiKey string, client *http.Client) *RESTSource {
	s := NewRESTSource(baseURL, apiKey, 0)
	if client != nil {
		s.client = client
	}
	return s
}

// Name returns the source identifier.
func (s *RESTSource) Name() string {
	return "rest"
}

// URL returns the request URL.
func (s *RESTSource) URL() string {
	return s.baseURL + config.MessagesPath
}

// Latest issues a single GET for the newest message row.
func (s *RESTSource) Latest(ctx context.Context) (string, error) {
	if s.baseURL == "" {
		return "", &AdapterError{Source: "rest", Message: "cannot fetch", Err: ErrNotConfigured}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(), nil)
	if err != nil {
		return "", &AdapterError{Source: "rest", Message: "failed to build request", Err: err}
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &AdapterError{Source: "rest", Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &AdapterError{
			Source:  "rest",
			Message: "unexpected response",
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	return decodeLatest("rest", resp.Body)
}
