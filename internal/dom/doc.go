// Package dom holds the tree plumbing shared by the extractors: a generic
// depth-first visitor and a lazy sibling sequence that work over any tree
// exposing first-child / next-sibling navigation, plus small helpers bound to
// golang.org/x/net/html for attributes, classes, text content and markup
// serialization.
package dom
