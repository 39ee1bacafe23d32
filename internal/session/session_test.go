package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const (
	loggedInPage  = `<div class="auth"><a href="/profil/profil.cgi">Jan Novák</a> <a href="/auth/logout.cgi">Odhlásit</a></div>`
	loggedOutPage = `<div class="auth"><a href="/auth/login.cgi">Přihlásit</a></div>`
)

type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Document(_ context.Context, ref string) (*html.Node, error) {
	f.calls = append(f.calls, ref)
	page, ok := f.pages[ref]
	if !ok {
		return nil, errors.New("not found")
	}
	return html.Parse(strings.NewReader(page))
}

func TestLoggedIn(t *testing.T) {
	testCases := []struct {
		name     string
		page     string
		expected bool
	}{
		{"logged in", loggedInPage, true},
		{"logged out", loggedOutPage, false},
		{"profile link outside auth box", `<a href="/profil/profil.cgi">x</a>`, false},
		{"empty page", ``, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader(tc.page))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, LoggedIn(doc))
		})
	}
}

func TestPageProbe(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{"/": loggedInPage, "/out": loggedOutPage}}

	assert.True(t, NewPageProbe(f, "").IsAuthenticated(context.Background()))
	assert.False(t, NewPageProbe(f, "/out").IsAuthenticated(context.Background()))
	assert.False(t, NewPageProbe(f, "/missing").IsAuthenticated(context.Background()))
	assert.Equal(t, []string{"/", "/out", "/missing"}, f.calls)
}

func TestStatic(t *testing.T) {
	assert.True(t, Static(true).IsAuthenticated(context.Background()))
	assert.False(t, Static(false).IsAuthenticated(context.Background()))
}
