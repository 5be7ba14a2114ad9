package wikibase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Client looks up entities in a Wikibase through the MediaWiki action API.
type Client interface {
	// Fetch retrieves an entity.
	//
	// The identifier is validated before any request is sent.
	// At most one request is sent per call, and it is never retried.
	//
	// # Args
	//
	// - context.Context: lifetime of the lookup. The configured timeout is applied on top of it.
	//
	// - string: identifier, like "Q42"
	//
	// # Returns
	//
	// - *Entity: the entity found
	//
	// - error: one of (wrapped)
	//
	//   - ErrInvalidIdentifier: identifier is malformed. No request was sent.
	//
	//   - ErrNotFound: the backend says the entity does not exist.
	//
	//   - ErrBackendTimeout: the backend did not answer within the timeout.
	//
	//   - ErrBackendUnavailable: any other failure of the backend.
	Fetch(ctx context.Context, id string) (*Entity, error)
}

const (
	DefaultTimeout   = 5 * time.Second
	DefaultLanguage  = "en"
	DefaultUserAgent = "mardi-fdo-facade/1.0"
)

type client struct {
	httpclient *http.Client
	api        *url.URL
	timeout    time.Duration
	language   string
	userAgent  string
}

type Option func(*client) *client

// WithTimeout bounds each lookup. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *client) *client {
		if 0 < d {
			c.timeout = d
		}
		return c
	}
}

// WithLanguage sets the language of labels and descriptions to be requested.
func WithLanguage(lang string) Option {
	return func(c *client) *client {
		if lang != "" {
			c.language = lang
		}
		return c
	}
}

func WithUserAgent(ua string) Option {
	return func(c *client) *client {
		if ua != "" {
			c.userAgent = ua
		}
		return c
	}
}

// WithHTTPClient replaces the http client. It is shared by all lookups.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) *client {
		if hc != nil {
			c.httpclient = hc
		}
		return c
	}
}

// NewClient creates a Client for the action API endpoint apiRoot
// (e.g. "https://portal.mardi4nfdi.de/w/api.php").
func NewClient(apiRoot string, opts ...Option) (Client, error) {
	u, err := url.Parse(apiRoot)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("api root should be an absolute URL: %s", apiRoot)
	}

	c := &client{
		httpclient: &http.Client{},
		api:        u,
		timeout:    DefaultTimeout,
		language:   DefaultLanguage,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		c = opt(c)
	}
	return c, nil
}

type apiResponse struct {
	Entities map[string]Entity `json:"entities"`
	Error    *apiError         `json:"error,omitempty"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

const codeNoSuchEntity = "no-such-entity"

func (c *client) Fetch(ctx context.Context, raw string) (*Entity, error) {
	id, err := ParseIdentifier(raw)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.query(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return nil, unavailable(id, err)
	}
	defer resp.Body.Close()

	if scr := StatusCodeRangeOf(resp); scr != Status2xx {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf(
			"%w: %s: %s (status code = %d)", ErrBackendUnavailable, id, scr, resp.StatusCode,
		)
	}

	body := apiResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, unavailable(id, fmt.Errorf("malformed response: %w", err))
	}

	if body.Error != nil {
		if body.Error.Code == codeNoSuchEntity {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf(
			"%w: %s: api error %s: %s", ErrBackendUnavailable, id, body.Error.Code, body.Error.Info,
		)
	}

	entity, ok := body.Entities[id.String()]
	if !ok || entity.Missing != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if entity.ID == "" {
		entity.ID = id.String()
	}
	return &entity, nil
}

func (c *client) query(id Identifier) string {
	u := *c.api
	q := u.Query()
	q.Set("action", "wbgetentities")
	q.Set("format", "json")
	q.Set("ids", id.String())
	q.Set("props", strings.Join([]string{"labels", "descriptions", "claims", "info"}, "|"))
	q.Set("languages", c.language)
	u.RawQuery = q.Encode()
	return u.String()
}

// classify transport failure as timeout or other unavailability.
func unavailable(id Identifier, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %s: %w", ErrBackendTimeout, id, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, id, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
