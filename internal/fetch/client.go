package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vk/kspgrab/internal/ctxlog"
	"github.com/vk/kspgrab/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/singleflight"
)

const (
	acceptHTML = "text/html,application/xhtml+xml"
	acceptAny  = "*/*"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the absolute site URL relative references resolve against.
	BaseURL string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
	// Cookie is sent verbatim in the Cookie header when set.
	Cookie    string
	UserAgent string
}

// StatusError is returned for responses with a status code of 400 or more.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface for StatusError.
func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Client fetches pages of the contest site.
type Client struct {
	http      *http.Client
	base      *url.URL
	cookie    string
	userAgent string
	inflight  singleflight.Group
}

// New creates a Client from opts.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	return &Client{
		http: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		base:      base,
		cookie:    opts.Cookie,
		userAgent: opts.UserAgent,
	}, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// URL resolves ref against the site URL.
func (c *Client) URL(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return c.base.ResolveReference(u), nil
}

// Text fetches ref and returns the raw response body.
func (c *Client) Text(ctx context.Context, ref string) ([]byte, error) {
	u, err := c.URL(ref)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, u.String(), acceptAny)
}

// Document fetches ref and parses it as HTML. The document gets a <base>
// element pointing at the fetched URL unless it already declares one.
func (c *Client) Document(ctx context.Context, ref string) (*html.Node, error) {
	u, err := c.URL(ref)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, u.String(), acceptHTML)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", u, err)
	}
	injectBase(doc, u.String())
	return doc, nil
}

// get performs a GET, sharing the request with concurrent callers of the same
// URL. The returned slice must not be modified.
func (c *Client) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	v, err, shared := c.inflight.Do(accept+" "+rawURL, func() (any, error) {
		return c.do(ctx, rawURL, accept)
	})
	if shared {
		ctxlog.FromContext(ctx).Debug("Shared in-flight request.", "url", rawURL)
	}
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Client) do(ctx context.Context, rawURL, accept string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Making HTTP request", "method", http.MethodGet, "url", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Received HTTP response", "url", rawURL, "status", resp.Status)
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// injectBase appends <base href=href> to the head of doc when doc has no
// <base> element yet.
func injectBase(doc *html.Node, href string) {
	if dom.FindElement(doc, func(n *html.Node) bool { return n.DataAtom == atom.Base }) != nil {
		return
	}
	head := dom.FindElement(doc, func(n *html.Node) bool { return n.DataAtom == atom.Head })
	if head == nil {
		// html.Parse always synthesizes a head, this is for hand-built trees.
		return
	}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "base",
		DataAtom: atom.Base,
		Attr:     []html.Attribute{{Key: "href", Val: href}},
	})
}
