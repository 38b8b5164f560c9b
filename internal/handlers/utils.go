package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/erro"
	"github.com/robklaiss/foteam/internal/handlers/response"
	"github.com/robklaiss/foteam/internal/metrics"
	"github.com/robklaiss/foteam/internal/service"
)

func getTraceID(r *http.Request) string {
	traceID, _ := r.Context().Value("traceID").(string)
	return traceID
}
func (h *Handler) getUserID(w http.ResponseWriter, r *http.Request, traceID string, place string) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		h.logproducer.NewPhotoLog(kafka.LogLevelError, place, traceID, "User ID not found in context")
		metrics.PhotoErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		response.BadResponse(r.Context(), w, erro.ServerError(erro.PhotoServiceUnavalaible), traceID, place, h.logproducer)
		return "", false
	}
	return userID, true
}
func (h *Handler) clientError(w http.ResponseWriter, r *http.Request, traceID string, place string, logmsg string, reason string) {
	h.logproducer.NewPhotoLog(kafka.LogLevelWarn, place, traceID, logmsg)
	metrics.PhotoErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
	response.BadResponse(r.Context(), w, erro.ClientError(reason), traceID, place, h.logproducer)
}
func (h *Handler) badServiceResponse(w http.ResponseWriter, r *http.Request, resp *service.ServiceResponse, traceID string, place string) bool {
	if resp.Success {
		return false
	}
	if resp.Errors == nil {
		resp.Errors = erro.ServerError(erro.PhotoServiceUnavalaible)
	}
	response.BadResponse(r.Context(), w, resp.Errors, traceID, place, h.logproducer)
	return true
}
func getAllData[T any](h *Handler, w http.ResponseWriter, r *http.Request, traceID string, place string, parser *T) bool {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.clientError(w, r, traceID, place, fmt.Sprintf("ReadAll Error: %v", err), erro.InvalidJSON)
		return false
	}
	if err := json.Unmarshal(data, parser); err != nil {
		h.clientError(w, r, traceID, place, fmt.Sprintf("Unmarshal Error: %v", err), erro.InvalidJSON)
		return false
	}
	return true
}

// queryInt reads an integer query parameter, def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
