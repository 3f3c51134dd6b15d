package roundhandlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(NewClientRateLimiter(1, 2))(okHandler)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/round1", nil)
		req.RemoteAddr = "203.0.113.7:5123"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	require.Equal(t, "1", last.Header().Get("Retry-After"))

	other := httptest.NewRequest(http.MethodGet, "/api/round1", nil)
	other.RemoteAddr = "198.51.100.2:4000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestClientRateLimiter_SharesBucketPerClient(t *testing.T) {
	limiter := NewClientRateLimiter(1, 1)
	require.True(t, limiter.Allow("10.0.0.1"))
	require.False(t, limiter.Allow("10.0.0.1"))
	require.True(t, limiter.Allow("10.0.0.2"))
	require.Equal(t, 2, limiter.Tracked())
}

func TestClientRateLimiter_PrunesIdleClients(t *testing.T) {
	limiter := NewClientRateLimiter(1, 1)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }
	for i := range pruneAbove + 1 {
		limiter.Allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Equal(t, pruneAbove+1, limiter.Tracked())

	limiter.now = func() time.Time { return start.Add(idleAfter + time.Minute) }
	limiter.Allow("192.0.2.1")
	require.Equal(t, 1, limiter.Tracked())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantOrigin string
		wantCode   int
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://tour.example.com", method: http.MethodGet, wantOrigin: "*", wantCode: http.StatusOK},
		{name: "listed origin", origins: []string{"https://tour.example.com"}, origin: "https://tour.example.com", method: http.MethodGet, wantOrigin: "https://tour.example.com", wantCode: http.StatusOK},
		{name: "unlisted origin", origins: []string{"https://tour.example.com"}, origin: "https://evil.example.com", method: http.MethodGet, wantOrigin: "", wantCode: http.StatusOK},
		{name: "preflight", origins: []string{"*"}, origin: "https://tour.example.com", method: http.MethodOptions, wantOrigin: "*", wantCode: http.StatusOK},
		{name: "no origins configured", origins: nil, origin: "https://tour.example.com", method: http.MethodGet, wantOrigin: "", wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/api/round2", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			CORSMiddleware(tt.origins)(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantCode, rr.Code)
			require.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			require.Equal(t, tt.method != http.MethodOptions, reached)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generates an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/round1", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		require.Equal(t, seen, rr.Header().Get(RequestIDHeader))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/round1", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, "req-42", seen)
		require.Equal(t, "req-42", rr.Header().Get(RequestIDHeader))
	})
}
