package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/pkg/logger"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

type recordingLogger struct {
	logger.Nop
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func TestAccessLog_LevelByStatus(t *testing.T) {
	log := &recordingLogger{}
	ok := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi"))
	}))
	failing := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	ok.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	failing.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil))

	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "GET /health status=200 bytes=2")
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "POST /api/v1/appointments status=500")
}

type observed struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct{ calls []observed }

func (f *fakeHTTPMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/appointments/{appointmentId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/appointments/42", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{http.MethodDelete, "/appointments/{appointmentId}", http.StatusNoContent}, m.calls[0])
}

type fakeCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (c *fakeCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int64)
	}
	c.counts[key]++
	return c.counts[key], nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func hit(h http.HandlerFunc, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.RemoteAddr = ip + ":5555"
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec.Code
}

func TestRateLimiter_LimitsPerClient(t *testing.T) {
	counter := &fakeCounter{}
	rl := NewRateLimiter(counter, 2, time.Minute, "salon", false, logger.Nop{})
	h := rl.Wrap("appointments", okHandler)

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2"))

	assert.Equal(t, int64(3), counter.counts["salon:appointments:10.0.0.1"])
}

func TestRateLimiter_CounterFailure(t *testing.T) {
	counter := &fakeCounter{err: errors.New("connection refused")}

	open := NewRateLimiter(counter, 1, time.Minute, "", true, logger.Nop{}).Wrap("login", okHandler)
	assert.Equal(t, http.StatusOK, hit(open, "10.0.0.1"))

	closed := NewRateLimiter(counter, 1, time.Minute, "", false, logger.Nop{}).Wrap("login", okHandler)
	assert.Equal(t, http.StatusServiceUnavailable, hit(closed, "10.0.0.1"))
}

func TestClientIP_PrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
