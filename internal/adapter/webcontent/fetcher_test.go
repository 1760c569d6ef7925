package webcontent

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
)

const page = `<!doctype html>
<html>
<head>
  <title>Karachi Bakery</title>
  <style>body { color: red }</style>
  <script>var tracking = "secret";</script>
</head>
<body>
  <nav><a href="/">Home</a></nav>
  <h1>Fresh   bread</h1>
  <p>Baked every <b>morning</b>.<br>Delivered citywide.</p>
  <noscript>enable javascript</noscript>
  <img src="x.png" alt="Sourdough loaf">
</body>
</html>`

func TestExtractText(t *testing.T) {
	got, err := ExtractText(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, "Karachi Bakery\nHome\nFresh bread\nBaked every morning .\nDelivered citywide.\nSourdough loaf", got)
	assert.NotContains(t, got, "secret")
	assert.NotContains(t, got, "color")
	assert.NotContains(t, got, "enable javascript")
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/html", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "adpilot-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "plain   text\nbody")
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(srv.Client(), configs.Fetch{MaxBytes: 1 << 20, UserAgent: "adpilot-test"}, nil)

	t.Run("joins pages in order", func(t *testing.T) {
		got, err := f.Fetch(context.Background(), []string{srv.URL + "/plain", srv.URL + "/html"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "plain text body Karachi Bakery"), got)
	})

	t.Run("non 2xx fails", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), []string{srv.URL + "/html", srv.URL + "/missing"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("no urls", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), nil)
		assert.ErrorIs(t, err, port.ErrInvalidRequest)
	})
}

func TestFetchTruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("a", 100))
	}))
	defer srv.Close()

	f := New(srv.Client(), configs.Fetch{MaxBytes: 10}, nil)
	got, err := f.Fetch(context.Background(), []string{srv.URL})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 10), got)
}
