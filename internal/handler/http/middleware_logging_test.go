package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the way withTraceID installs one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/healthz",
			handlerStatus:   http.StatusOK,
			handlerResponse: "ok",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/healthz"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 202 accepted",
			method:          http.MethodPost,
			path:            "/message?sessionId=abc",
			handlerStatus:   http.StatusAccepted,
			handlerResponse: "Accepted",
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/message?sessionId=abc"`,
				`"status":202`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/mcp",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:             "GET 500 error",
			method:           http.MethodGet,
			path:             "/error",
			handlerStatus:    http.StatusInternalServerError,
			handlerResponse:  "Internal Server Error",
			checkLogContains: []string{`"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_HandlerSeesFlusher(t *testing.T) {
	var logBuf bytes.Buffer
	var flushed bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		if ok {
			_, _ = w.Write([]byte("event: endpoint\n\n"))
			f.Flush()
			flushed = true
		}
	})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/sse", &logBuf))

	assert.True(t, flushed, "streaming handlers need http.Flusher")
	assert.True(t, rr.Flushed)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(logger.Nop().Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
