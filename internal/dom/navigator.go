package dom

import (
	"iter"

	"golang.org/x/net/html"
)

// Navigator describes how to move through a tree of nodes of type N. The zero
// value of N marks the absence of a node.
type Navigator[N comparable] struct {
	FirstChild  func(N) N
	NextSibling func(N) N
}

// HTML navigates trees produced by golang.org/x/net/html.
var HTML = Navigator[*html.Node]{
	FirstChild:  func(n *html.Node) *html.Node { return n.FirstChild },
	NextSibling: func(n *html.Node) *html.Node { return n.NextSibling },
}

// Walk visits root and then every descendant in depth-first pre-order, each
// exactly once. The visitor may modify a node but must not detach it.
func (nav Navigator[N]) Walk(root N, visit func(N)) {
	var zero N
	if root == zero {
		return
	}
	visit(root)
	for c := nav.FirstChild(root); c != zero; c = nav.NextSibling(c) {
		nav.Walk(c, visit)
	}
}

// Siblings yields start followed by its next siblings in document order. The
// next sibling is read only after the consumer returns from the current one,
// and every range over the sequence starts again from start.
func (nav Navigator[N]) Siblings(start N) iter.Seq[N] {
	return func(yield func(N) bool) {
		var zero N
		for n := start; n != zero; n = nav.NextSibling(n) {
			if !yield(n) {
				return
			}
		}
	}
}
