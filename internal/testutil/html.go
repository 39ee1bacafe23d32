// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// ParseHTML parses src as a full HTML document, failing the test on error.
func ParseHTML(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err, "failed to parse test document")
	return doc
}

// PageWithBase wraps body into a document whose <base> points at baseURL.
func PageWithBase(baseURL, body string) string {
	return `<html><head><base href="` + baseURL + `"></head><body>` + body + `</body></html>`
}
