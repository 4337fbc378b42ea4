package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleka07/welcome-world/pkg/logging"
)

func newTestRouter() http.Handler {
	logger := logging.Discard()
	return NewRouter(NewAPI(logger), logger)
}

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestStaticRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		path string
		body string
	}{
		{"/", "Welcome to the world!"},
		{"/status", "All is well with the world"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := serve(t, router, http.MethodGet, tt.path)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())
			assert.Equal(t, ContentTypeText, rr.Header().Get("Content-Type"))
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/nonexistent", "/status/extra", "/welcome"} {
		rr := serve(t, router, http.MethodGet, path)
		assert.Equal(t, http.StatusNotFound, rr.Code, "path %s", path)
	}
}

func TestWrongMethodIsRejected(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		for _, path := range []string{"/", "/status"} {
			rr := serve(t, router, method, path)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, "%s %s", method, path)
			assert.NotEqual(t, WelcomeBody, rr.Body.String())
			assert.NotEqual(t, StatusBody, rr.Body.String())
		}
	}
}

func TestResponsesAreIdentical(t *testing.T) {
	router := newTestRouter()

	first := serve(t, router, http.MethodGet, "/status").Body.Bytes()

	req := httptest.NewRequest(http.MethodGet, "/status?name=someone", nil)
	req.Header.Set("User-Agent", "something-else")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, first, rr.Body.Bytes())
}

func TestHeadServedByGetHandlers(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	for _, path := range []string{"/", "/status"} {
		resp, err := http.Head(srv.URL + path)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "HEAD %s", path)
		assert.Empty(t, body)
	}
}

func TestSendText(t *testing.T) {
	rr := httptest.NewRecorder()

	err := NewResponseWriter(rr).SendText(http.StatusAccepted, "hello")
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "hello", rr.Body.String())
	assert.Equal(t, "5", rr.Header().Get("Content-Length"))
	assert.Equal(t, ContentTypeText, rr.Header().Get("Content-Type"))
}
