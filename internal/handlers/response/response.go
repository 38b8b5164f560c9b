package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/metrics"
)

type HTTPResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
	Data    map[string]any    `json:"data,omitempty"`
	Status  int               `json:"status"`
}
type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}

const ClientErrorKey = "ClientError"
const ServerErrorKey = "InternalServerError"

func SendResponse(ctx context.Context, w http.ResponseWriter, success bool, data map[string]any, errors map[string]string, status int, traceid string, place string, logproducer LogProducer) {
	defer observe(ctx, place)
	w.Header().Set("Content-Type", "application/json")
	if ctx.Err() != nil {
		logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Context error: %v", ctx.Err()))
		writeJSON(w, HTTPResponse{
			Success: false,
			Errors:  map[string]string{ServerErrorKey: erro.RequestTimedOut},
			Status:  http.StatusInternalServerError,
		})
		metrics.PhotoErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return
	}
	resp := HTTPResponse{
		Success: success,
		Errors:  errors,
		Data:    data,
		Status:  status,
	}
	if err := writeJSON(w, resp); err != nil {
		logproducer.NewPhotoLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to encode response: %v", err))
		metrics.PhotoErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return
	}
	if success {
		metrics.PhotoTotalSuccessfulRequests.WithLabelValues(place).Inc()
	}
	logproducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, "Succesfull send response to client")
}

// BadResponse writes err with 400 for client errors and 500 for the rest.
func BadResponse(ctx context.Context, w http.ResponseWriter, err *erro.CustomError, traceid string, place string, logproducer LogProducer) {
	status := http.StatusInternalServerError
	key := ServerErrorKey
	if err.Type == erro.ClientErrorType {
		status = http.StatusBadRequest
		key = ClientErrorKey
	}
	SendResponse(ctx, w, false, nil, map[string]string{key: err.Message}, status, traceid, place, logproducer)
}
func writeJSON(w http.ResponseWriter, resp HTTPResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"errors":{"InternalServerError":"EncoderResponse Error"},"status":500}`))
		return err
	}
	w.WriteHeader(resp.Status)
	_, err = w.Write(data)
	return err
}
func observe(ctx context.Context, place string) {
	start, ok := ctx.Value("starttime").(time.Time)
	if !ok {
		return
	}
	metrics.PhotoRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
}
