package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/handlers/response"
	"github.com/robklaiss/foteam/internal/metrics"
)

func (m *Middleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			traceID, _ := r.Context().Value("traceID").(string)
			err := fmt.Errorf("panic in %s %s: %v", r.Method, r.URL.Path, rec)
			sentry.CaptureException(err)
			metrics.PhotoPanicsTotal.Inc()
			metrics.PhotoErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			m.logproducer.NewPhotoLog(kafka.LogLevelError, Recovery, traceID, err.Error())
			response.SendResponse(r.Context(), w, false, nil, map[string]string{response.ServerErrorKey: erro.PhotoServiceUnavalaible}, http.StatusInternalServerError, traceID, Recovery, m.logproducer)
		}()
		next.ServeHTTP(w, r)
	})
}
