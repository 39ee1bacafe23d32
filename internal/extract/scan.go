package extract

import (
	"strings"

	"github.com/vk/kspgrab/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type scanState int

const (
	skippingSeparators scanState = iota
	copying
	done
)

type action int

const (
	actIgnore action = iota
	actCopyElement
	actCopyText
	actStop
)

// transition decides what to do with n in state s and which state follows.
func (x *Extractor) transition(s scanState, n *html.Node) (scanState, action) {
	switch s {
	case skippingSeparators:
		if n.Type != html.ElementNode {
			return skippingSeparators, actIgnore
		}
		// A trailing rule with nothing after it is kept as content.
		if dom.IsElement(n, atom.Hr) && dom.NextElementSibling(n) != nil {
			return skippingSeparators, actIgnore
		}
		if isMarkerImage(n) {
			return copying, actIgnore
		}
		return x.transition(copying, n)

	case copying:
		switch n.Type {
		case html.ElementNode:
			if x.isBoundary(n) {
				return done, actStop
			}
			if x.isSkipped(n) {
				return copying, actIgnore
			}
			return copying, actCopyElement
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return copying, actCopyText
			}
		}
		return copying, actIgnore
	}
	return done, actStop
}

// isBoundary reports whether n starts something that is not part of the task.
func (x *Extractor) isBoundary(n *html.Node) bool {
	return dom.HasClass(n, "story") ||
		n.DataAtom == atom.H3 ||
		strings.TrimSpace(dom.TextContent(n)) == x.locale.SolutionWord
}

func (x *Extractor) isSkipped(n *html.Node) bool {
	_, ok := x.skip[dom.NormalizeSpace(dom.TextContent(n))]
	return ok
}

// isMarkerImage matches the floated image some practical tasks open with.
func isMarkerImage(n *html.Node) bool {
	return dom.IsElement(n, atom.Img) && dom.HasClass(n, "leftfloat")
}

// dropMarkerImage removes a marker image that is the first element child of n.
func dropMarkerImage(n *html.Node) {
	if first := dom.FirstElementChild(n); isMarkerImage(first) {
		dom.Detach(first)
	}
}
