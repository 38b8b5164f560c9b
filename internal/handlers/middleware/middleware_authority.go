package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/handlers/response"
	"github.com/robklaiss/foteam/internal/metrics"
)

// Authorized requires the X-User-ID header set by the gateway and bounds the request with the configured timeout.
func (m *Middleware) Authorized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, _ := r.Context().Value("traceID").(string)
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			m.logproducer.NewPhotoLog(kafka.LogLevelWarn, Authority, traceID, "Required User-ID")
			metrics.PhotoErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.SendResponse(r.Context(), w, false, nil, map[string]string{response.ClientErrorKey: erro.RequiredUserID}, http.StatusUnauthorized, traceID, Authority, m.logproducer)
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			m.logproducer.NewPhotoLog(kafka.LogLevelWarn, Authority, traceID, fmt.Sprintf("UUID-parse Error: %v", err))
			metrics.PhotoErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.SendResponse(r.Context(), w, false, nil, map[string]string{response.ClientErrorKey: erro.InvalidUserIDFormat}, http.StatusUnauthorized, traceID, Authority, m.logproducer)
			return
		}
		ctx := context.WithValue(r.Context(), "userID", userID)
		if m.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, m.requestTimeout)
			defer cancel()
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
