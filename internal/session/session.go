// Package session answers whether requests to the contest site run on behalf
// of a logged-in contestant. Status tables are only served to logged-in
// users, so batch status fetches consult a Provider before touching the
// network.
package session

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/vk/kspgrab/internal/ctxlog"
	"golang.org/x/net/html"
)

// DefaultProbePath is the page checked for the login marker.
const DefaultProbePath = "/"

// loggedInSelector matches the profile link shown only to logged-in users.
const loggedInSelector = ".auth a[href='/profil/profil.cgi']"

// Provider reports whether a session is active.
type Provider interface {
	IsAuthenticated(ctx context.Context) bool
}

// Static is a Provider with a fixed answer.
type Static bool

// IsAuthenticated implements Provider.
func (s Static) IsAuthenticated(context.Context) bool {
	return bool(s)
}

// DocumentFetcher fetches and parses a site page.
type DocumentFetcher interface {
	Document(ctx context.Context, ref string) (*html.Node, error)
}

// PageProbe decides by fetching a page and looking for the login marker.
type PageProbe struct {
	fetcher DocumentFetcher
	path    string
}

// NewPageProbe creates a PageProbe for the page at path.
func NewPageProbe(fetcher DocumentFetcher, path string) *PageProbe {
	if path == "" {
		path = DefaultProbePath
	}
	return &PageProbe{fetcher: fetcher, path: path}
}

// IsAuthenticated implements Provider. A page that fails to load counts as
// not logged in.
func (p *PageProbe) IsAuthenticated(ctx context.Context) bool {
	logger := ctxlog.FromContext(ctx)
	doc, err := p.fetcher.Document(ctx, p.path)
	if err != nil {
		logger.Warn("Session probe failed.", "path", p.path, "error", err)
		return false
	}
	ok := LoggedIn(doc)
	logger.Debug("Session probe finished.", "path", p.path, "authenticated", ok)
	return ok
}

// LoggedIn reports whether doc shows the logged-in user's profile link.
func LoggedIn(doc *html.Node) bool {
	return goquery.NewDocumentFromNode(doc).Find(loggedInSelector).Length() > 0
}
