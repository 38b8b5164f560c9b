package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/robklaiss/foteam/internal/configs"
	"golang.org/x/time/rate"
)

type RateLimiterEntry struct {
	Limiter  *rate.Limiter
	LastUsed time.Time
	mu       sync.Mutex
}
type Middleware struct {
	logproducer    LogProducer
	rateLimiters   sync.Map
	limit          rate.Limit
	burst          int
	requestTimeout time.Duration
	stopclean      chan struct{}
	stopOnce       sync.Once
}
type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}
type MiddlewareService interface {
	Logging(next http.Handler) http.Handler
	Authorized(next http.Handler) http.Handler
	RateLimiter(next http.Handler) http.Handler
	Recovery(next http.Handler) http.Handler
}

const Logging = "Middleware-Logging"
const Authority = "Middleware-Authority"
const RateLimiter = "Middleware-RateLimiter"
const Recovery = "Middleware-Recovery"

func NewMiddleware(logproducer LogProducer, limits configs.RateLimitConfig, requestTimeout time.Duration) *Middleware {
	if limits.RPS <= 0 {
		limits.RPS = 0.5
	}
	if limits.Burst <= 0 {
		limits.Burst = 10
	}
	m := &Middleware{
		logproducer:    logproducer,
		limit:          rate.Limit(limits.RPS),
		burst:          limits.Burst,
		requestTimeout: requestTimeout,
		stopclean:      make(chan struct{}),
	}
	go m.cleanLimit(5 * time.Minute)
	return m
}
func (m *Middleware) Stop() {
	m.stopOnce.Do(func() { close(m.stopclean) })
}
