package links

import (
	"net/url"

	"github.com/vk/kspgrab/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// srcElements and hrefElements list the tags whose reference attribute is a
// URL resolved by browsers.
var (
	srcElements = map[atom.Atom]bool{
		atom.Img: true, atom.Script: true, atom.Iframe: true, atom.Embed: true,
		atom.Source: true, atom.Audio: true, atom.Video: true, atom.Track: true,
		atom.Input: true, atom.Frame: true,
	}
	hrefElements = map[atom.Atom]bool{
		atom.A: true, atom.Area: true, atom.Link: true, atom.Base: true,
	}
)

// Rewriter turns relative references into absolute ones.
type Rewriter struct {
	base *url.URL
}

// New creates a Rewriter resolving against base. A nil base leaves relative
// references untouched.
func New(base *url.URL) *Rewriter {
	return &Rewriter{base: base}
}

// ForDocument creates a Rewriter for the base URL declared by doc.
func ForDocument(doc *html.Node) *Rewriter {
	return New(BaseOf(doc))
}

// BaseOf returns the URL of the first <base href> in doc, or nil when doc
// declares no usable absolute base.
func BaseOf(doc *html.Node) *url.URL {
	base := dom.FindElement(doc, func(n *html.Node) bool {
		_, ok := dom.Attr(n, "href")
		return n.DataAtom == atom.Base && ok
	})
	if base == nil {
		return nil
	}
	href, _ := dom.Attr(base, "href")
	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// FixAll rewrites the references of n and all of its descendants in place.
func (r *Rewriter) FixAll(n *html.Node) {
	dom.HTML.Walk(n, r.fix)
}

func (r *Rewriter) fix(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	if srcElements[n.DataAtom] {
		r.rewrite(n, "src")
	}
	if hrefElements[n.DataAtom] {
		r.rewrite(n, "href")
	}
}

func (r *Rewriter) rewrite(n *html.Node, key string) {
	val, ok := dom.Attr(n, key)
	if !ok {
		return
	}
	if abs, ok := r.Resolve(val); ok {
		dom.SetAttr(n, key, abs)
	}
}

// Resolve returns ref as an absolute URL. It reports false when ref does not
// parse or when there is no base to resolve a relative ref against.
func (r *Rewriter) Resolve(ref string) (string, bool) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	if u.IsAbs() {
		return u.String(), true
	}
	if r.base == nil {
		return "", false
	}
	return r.base.ResolveReference(u).String(), true
}
