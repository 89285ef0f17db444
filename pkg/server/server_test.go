package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPage(r *http.Request) (*render.Document, error) {
	return &render.Document{
		Title: "Test",
		Body: markup.Div(
			markup.Style("color", "red"),
			markup.H1(markup.Text("Served")),
			markup.P(markup.Text("streamed content")),
		),
	}, nil
}

func newTestServer(t *testing.T, cfg Config, opts ...Option) *Server {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	return New(cfg, opts...)
}

func TestServePage(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.Handle("/", testPage)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Served</h1>")
	assert.Contains(t, body, `class="color-0"`)
	// Progressive streaming defers the stylesheet to the end of the body.
	styleAt := strings.Index(body, "<style>.color-0{color:red}</style>")
	require.NotEqual(t, -1, styleAt, "stylesheet missing: %q", body)
	assert.Greater(t, styleAt, strings.Index(body, "</head>"))
	assert.Less(t, styleAt, strings.Index(body, "</body>"))
}

func TestServePageMatchesStreamDocument(t *testing.T) {
	srv := newTestServer(t, Config{ChunkSize: 16})
	srv.Handle("/", testPage)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	doc, err := testPage(nil)
	require.NoError(t, err)
	var want []byte
	for chunk := range render.New(render.Config{}).StreamDocument(context.Background(), doc, 16) {
		want = append(want, chunk...)
	}
	assert.Equal(t, string(want), rec.Body.String())
}

func TestServePageFlushesChunks(t *testing.T) {
	srv := newTestServer(t, Config{ChunkSize: 8})
	srv.Handle("/", testPage)

	rec := httptest.NewRecorder()
	fw := &flushCountingWriter{ResponseWriter: rec}
	srv.Handler().ServeHTTP(fw, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// One flush per chunk: a small chunk size forces several.
	assert.Greater(t, fw.flushes, 3)
}

// flushCountingWriter counts Flush calls from the streaming loop.
type flushCountingWriter struct {
	http.ResponseWriter
	flushes int
}

func (w *flushCountingWriter) Flush() {
	w.flushes++
}

func TestServePageError(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.Handle("/boom", func(r *http.Request) (*render.Document, error) {
		return nil, errors.New("kaboom: database on fire")
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	// Not in dev mode: the raw error must not leak.
	assert.NotContains(t, rec.Body.String(), "database on fire")
}

func TestServePageErrorDevShowsDetail(t *testing.T) {
	srv := newTestServer(t, Config{Dev: true})
	srv.Handle("/boom", func(r *http.Request) (*render.Document, error) {
		return nil, errors.New("kaboom: database on fire")
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database on fire")
}

func TestServeNilDocument(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.Handle("/nil", func(r *http.Request) (*render.Document, error) {
		return nil, nil
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nil", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestDevModeInjectsReloadScript(t *testing.T) {
	srv := newTestServer(t, Config{Dev: true})
	srv.Handle("/", testPage)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rec.Body.String(), reloadPath)
	require.NotNil(t, srv.Reload())
}

func TestProdModeOmitsReloadScript(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.Handle("/", testPage)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, rec.Body.String(), reloadPath)
	assert.Nil(t, srv.Reload())
}

func TestMetricsCountRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv := newTestServer(t, Config{}, WithMetrics(WithMetricsRegistry(reg)))
	srv.Handle("/", testPage)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	requests := testutil.ToFloat64(srv.metrics.requestsTotal.WithLabelValues("/", "200"))
	assert.Equal(t, 3.0, requests)
	assert.Greater(t, testutil.ToFloat64(srv.metrics.streamBytes), 0.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(srv.metrics.streamChunks), 3.0)
	assert.Equal(t, 0.0, testutil.ToFloat64(srv.metrics.inFlight))
}

func TestTracingMiddlewarePassesThrough(t *testing.T) {
	// No tracer provider installed: spans are no-ops, the response
	// must be unaffected.
	srv := newTestServer(t, Config{}, WithTracing())
	srv.Handle("/", testPage)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Served</h1>")
}

func TestWithReloadScriptDoesNotMutate(t *testing.T) {
	doc := &render.Document{Title: "X", Body: markup.Div()}
	out := withReloadScript(doc)

	assert.Nil(t, doc.Head)
	require.NotNil(t, out.Head)
}
