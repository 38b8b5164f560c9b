package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/metrics"
)

// Logging assigns the trace id (X-Trace-ID or a fresh uuid) and the start time used by response metrics.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), "traceID", traceID)
		ctx = context.WithValue(ctx, "starttime", time.Now())
		r = r.WithContext(ctx)
		w.Header().Set("X-Trace-ID", traceID)
		metrics.PhotoTotalRequests.WithLabelValues(r.URL.Path).Inc()
		m.logproducer.NewPhotoLog(kafka.LogLevelInfo, Logging, traceID, fmt.Sprintf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr))
		next.ServeHTTP(w, r)
	})
}
