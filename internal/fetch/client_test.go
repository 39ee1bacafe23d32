package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/kspgrab/internal/dom"
	"github.com/vk/kspgrab/internal/links"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/h/ulohy/32/zadani2.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Zadání</title></head><body><h2 id="task-32-2-1">32-2-1 A</h2><img src="obr/a.png"></body></html>`))
	})
	mux.HandleFunc("/with-base.html", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><base href="https://mirror.example/"></head><body></body></html>`))
	})
	mux.HandleFunc("/tasks.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tasks":[]}`))
	})
	mux.HandleFunc("/headers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("Cookie") + "|" + r.Header.Get("User-Agent") + "|" + r.Header.Get("Accept")))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server, opts Options) *Client {
	t.Helper()
	opts.BaseURL = srv.URL
	c, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestDocument_InjectsBase(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv, Options{})

	doc, err := c.Document(context.Background(), "/h/ulohy/32/zadani2.html")
	require.NoError(t, err)

	base := links.BaseOf(doc)
	require.NotNil(t, base)
	assert.Equal(t, srv.URL+"/h/ulohy/32/zadani2.html", base.String())
	assert.NotNil(t, dom.ElementByID(doc, "task-32-2-1"))
}

func TestDocument_KeepsExistingBase(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv, Options{})

	doc, err := c.Document(context.Background(), "/with-base.html")
	require.NoError(t, err)

	base := links.BaseOf(doc)
	require.NotNil(t, base)
	assert.Equal(t, "https://mirror.example/", base.String())
}

func TestDocument_StatusError(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv, Options{})

	testCases := []struct {
		ref        string
		statusCode int
	}{
		{"/broken", http.StatusInternalServerError},
		{"/missing.html", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.ref, func(t *testing.T) {
			doc, err := c.Document(context.Background(), tc.ref)
			assert.Nil(t, doc)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tc.statusCode, statusErr.StatusCode)
			assert.Equal(t, srv.URL+tc.ref, statusErr.URL)
		})
	}
}

func TestDocument_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close()

	_, err = c.Document(context.Background(), "/")
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestText(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv, Options{})

	body, err := c.Text(context.Background(), "tasks.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks":[]}`, string(body))
}

func TestHeaders(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv, Options{Cookie: "session=abc", UserAgent: "kspgrab-test"})

	body, err := c.Text(context.Background(), "/headers")
	require.NoError(t, err)
	assert.Equal(t, "session=abc|kspgrab-test|*/*", string(body))
}

func TestDocument_ConcurrentCallersGetOwnTrees(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv, Options{})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]any, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := c.Document(context.Background(), "/h/ulohy/32/zadani2.html")
			if err != nil {
				results[i] = err
				return
			}
			results[i] = doc
		}(i)
	}
	wg.Wait()

	seen := map[any]bool{}
	for _, r := range results {
		_, isErr := r.(error)
		require.False(t, isErr, "unexpected error: %v", r)
		assert.False(t, seen[r], "document shared between callers")
		seen[r] = true
	}
}

func TestNew_InvalidBase(t *testing.T) {
	_, err := New(Options{BaseURL: "/relative"})
	require.Error(t, err)

	_, err = New(Options{BaseURL: "http://[::1"})
	require.Error(t, err)
}
