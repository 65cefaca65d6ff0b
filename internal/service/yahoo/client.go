// Package yahoo is the default market data client. It reads the public Yahoo
// Finance JSON endpoints and maps them onto domain models.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"FinFrame/internal/domain/repository"
	"FinFrame/pkg/config"
	pkghttp "FinFrame/pkg/http"
)

var ErrNoData = errors.New("no data returned for symbol")

// Client implements repository.MarketData. It is cheap to build and meant to
// live for a single call.
type Client struct {
	http    *pkghttp.Client
	baseURL string
	isinURL string
	crumb   string
}

var _ repository.MarketData = (*Client)(nil)

// New creates a client from cfg.
func New(cfg config.Client) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("yahoo: base url is required")
	}
	opts := []pkghttp.ClientOption{
		pkghttp.WithTimeout(cfg.Timeout),
		pkghttp.WithUserAgent(cfg.UserAgent),
		pkghttp.WithHeader("Cookie", cfg.Cookie),
		pkghttp.WithHeader("Accept", "application/json"),
	}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("yahoo: parse proxy url: %w", err)
		}
		opts = append(opts, pkghttp.WithProxy(proxy))
	}
	return &Client{
		http:    pkghttp.NewClient(opts...),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		isinURL: cfg.ISINURL,
		crumb:   cfg.Crumb,
	}, nil
}

// NewFactory returns a factory that builds a fresh client per call.
func NewFactory(cfg config.Client) repository.MarketDataFactory {
	return func() (repository.MarketData, error) {
		return New(cfg)
	}
}

// Close drops idle connections held by this client.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest interface{}) error {
	if query == nil {
		query = url.Values{}
	}
	if c.crumb != "" {
		query.Set("crumb", c.crumb)
	}
	return c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method:      pkghttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: query,
	}, dest)
}

// apiError is the error object Yahoo embeds in otherwise successful bodies.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) err() error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %s", e.Code, e.Description)
}

// rawNum is Yahoo's {"raw": 1.5, "fmt": "1.50"} number wrapper.
type rawNum struct {
	Raw *float64 `json:"raw"`
}

func (n *rawNum) value() *float64 {
	if n == nil {
		return nil
	}
	return n.Raw
}

func (n *rawNum) asInt64() *int64 {
	if n == nil || n.Raw == nil {
		return nil
	}
	v := int64(*n.Raw)
	return &v
}

func (n *rawNum) asUint64() *uint64 {
	if n == nil || n.Raw == nil || *n.Raw < 0 {
		return nil
	}
	v := uint64(*n.Raw)
	return &v
}

func (n *rawNum) unix() int64 {
	if v := n.asInt64(); v != nil {
		return *v
	}
	return 0
}

func toUint64(v *float64) *uint64 {
	if v == nil || *v < 0 {
		return nil
	}
	u := uint64(*v)
	return &u
}
