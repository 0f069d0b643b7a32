// Package opensubtitles is a client for the OpenSubtitles XML-RPC catalog.
//
// A Client owns one Session. LogIn populates it once; every search reuses the
// token and nothing ever refreshes it. A stale token is reported by the
// catalog as an ordinary status error.
package opensubtitles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Belphemur/Subtitler/internal/apperrors"
	"github.com/Belphemur/Subtitler/internal/config"
	"github.com/Belphemur/Subtitler/internal/metrics"
	"github.com/Belphemur/Subtitler/internal/models"
)

// Remote method names
const (
	methodLogIn           = "LogIn"
	methodSearchSubtitles = "SearchSubtitles"
)

// Client talks to the catalog on behalf of one set of credentials
type Client struct {
	httpClient  *http.Client
	endpoint    string
	credentials models.Credentials

	mu      sync.RWMutex // Protects session
	session models.Session
	login   singleflight.Group
}

// NewClient creates a catalog client from configuration, with proxy and timeout applied
func NewClient(cfg *config.Config) *Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to keep its connection pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}

	return New(cfg.CatalogURL, models.Credentials{
		Language:         cfg.Language,
		ClientIdentifier: cfg.UserAgent,
	}, httpClient)
}

// New creates a catalog client for endpoint using httpClient as is.
func New(endpoint string, credentials models.Credentials, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Transport: newCompressionTransport(nil)}
	}
	return &Client{
		httpClient:  httpClient,
		endpoint:    endpoint,
		credentials: credentials,
		session:     models.Session{Language: credentials.Language},
	}
}

// Session returns a copy of the current session.
func (c *Client) Session() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Authenticated reports whether LogIn has succeeded on this client.
func (c *Client) Authenticated() bool {
	return c.Session().Authenticated
}

// call invokes method and returns the first response record.
func (c *Client) call(ctx context.Context, method string, params ...value) (value, error) {
	start := time.Now()
	record, err := c.roundTrip(ctx, method, params)
	metrics.CatalogRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.CatalogRequestsTotal.WithLabelValues(method, callResult(err)).Inc()
	return record, err
}

func (c *Client) roundTrip(ctx context.Context, method string, params []value) (value, error) {
	logger := config.GetLogger()

	body, err := encodeCall(method, params...)
	if err != nil {
		return value{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return value{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("User-Agent", c.credentials.ClientIdentifier)

	logger.Debug().Str("method", method).Str("endpoint", c.endpoint).Msg("Calling catalog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return value{}, &apperrors.ErrTransport{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return value{}, &apperrors.ErrTransport{Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	decoded, err := decodeResponse(resp.Body)
	if err != nil {
		var fault *faultError
		if errors.As(err, &fault) {
			return value{}, &apperrors.ErrStatus{Message: fault.Error()}
		}
		return value{}, fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if len(decoded.Params) == 0 {
		return value{}, &apperrors.ErrMissingField{Method: method, Field: "params", Record: -1}
	}

	return decoded.Params[0].Value, nil
}

func callResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, &apperrors.ErrTransport{}):
		return "transport_error"
	case errors.Is(err, &apperrors.ErrStatus{}):
		return "status_error"
	default:
		return "parse_error"
	}
}
