package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robklaiss/foteam/internal/configs"
	"github.com/stretchr/testify/require"
)

type nopLog struct{}

func (nopLog) NewPhotoLog(level, place, traceid, msg string) {}

func TestCallerKey(t *testing.T) {
	req := httptest.NewRequest("GET", "/photos", nil)
	req.RemoteAddr = "10.0.0.7:53211"
	require.Equal(t, "10.0.0.7", callerKey(req))

	req = req.WithContext(context.WithValue(req.Context(), "userID", "u-1"))
	require.Equal(t, "u-1", callerKey(req))
}

func TestEvictIdle(t *testing.T) {
	m := NewMiddleware(nopLog{}, configs.RateLimitConfig{RPS: 1, Burst: 1}, 0)
	defer m.Stop()
	first := m.getLimit("a")
	require.Same(t, first, m.getLimit("a"))
	m.getLimit("b")

	entry, _ := m.rateLimiters.Load("a")
	entry.(*RateLimiterEntry).LastUsed = time.Now().Add(-time.Hour)
	require.Equal(t, 1, m.evictIdle(time.Minute))
	_, ok := m.rateLimiters.Load("a")
	require.False(t, ok)
	_, ok = m.rateLimiters.Load("b")
	require.True(t, ok)
}

func TestStopIsIdempotent(t *testing.T) {
	m := NewMiddleware(nopLog{}, configs.RateLimitConfig{}, 0)
	m.Stop()
	m.Stop()
	require.Equal(t, 10, m.burst)
}
