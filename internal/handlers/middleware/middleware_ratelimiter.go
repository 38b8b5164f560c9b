package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/handlers/response"
	"github.com/robklaiss/foteam/internal/metrics"
	"golang.org/x/time/rate"
)

// RateLimiter applies a token bucket per caller, keyed by user id or client IP.
func (m *Middleware) RateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, _ := r.Context().Value("traceID").(string)
		if !m.getLimit(callerKey(r)).Allow() {
			m.logproducer.NewPhotoLog(kafka.LogLevelWarn, RateLimiter, traceID, "Too many requests")
			metrics.PhotoErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			metrics.PhotoRateLimitExceededTotal.WithLabelValues(r.URL.Path).Inc()
			response.SendResponse(r.Context(), w, false, nil, map[string]string{response.ClientErrorKey: erro.TooManyRequests}, http.StatusTooManyRequests, traceID, RateLimiter, m.logproducer)
			return
		}
		next.ServeHTTP(w, r)
	})
}
func callerKey(r *http.Request) string {
	if userID, ok := r.Context().Value("userID").(string); ok && userID != "" {
		return userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
func (m *Middleware) getLimit(key string) *rate.Limiter {
	entry, _ := m.rateLimiters.LoadOrStore(key, &RateLimiterEntry{Limiter: rate.NewLimiter(m.limit, m.burst), LastUsed: time.Now()})
	e := entry.(*RateLimiterEntry)
	e.mu.Lock()
	e.LastUsed = time.Now()
	e.mu.Unlock()
	return e.Limiter
}
func (m *Middleware) cleanLimit(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopclean:
			m.logproducer.NewPhotoLog(kafka.LogLevelInfo, RateLimiter, "", "Successful completion of RateLimiter")
			return
		case <-ticker.C:
			m.evictIdle(every)
		}
	}
}
func (m *Middleware) evictIdle(idle time.Duration) int {
	deleted := 0
	m.rateLimiters.Range(func(key, value any) bool {
		e := value.(*RateLimiterEntry)
		e.mu.Lock()
		stale := time.Since(e.LastUsed) >= idle
		e.mu.Unlock()
		if stale {
			m.rateLimiters.Delete(key)
			deleted++
		}
		return true
	})
	return deleted
}
