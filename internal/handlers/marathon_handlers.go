package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/robklaiss/foteam/internal/handlers/response"
	"github.com/robklaiss/foteam/internal/model"
)

func (h *Handler) CreateMarathon(w http.ResponseWriter, r *http.Request) {
	const place = API_CreateMarathon
	traceID := getTraceID(r)
	userID, ok := h.getUserID(w, r, traceID, place)
	if !ok {
		return
	}
	var req model.MarathonRequest
	if !getAllData(h, w, r, traceID, place, &req) {
		return
	}
	serviceresponse := h.services.CreateMarathon(r.Context(), userID, &req)
	if h.badServiceResponse(w, r, serviceresponse, traceID, place) {
		return
	}
	response.SendResponse(r.Context(), w, true, map[string]any{"marathon": serviceresponse.Data.Marathon}, nil, http.StatusCreated, traceID, place, h.logproducer)
}
func (h *Handler) UpdateMarathon(w http.ResponseWriter, r *http.Request) {
	const place = API_UpdateMarathon
	traceID := getTraceID(r)
	userID, ok := h.getUserID(w, r, traceID, place)
	if !ok {
		return
	}
	var req model.MarathonRequest
	if !getAllData(h, w, r, traceID, place, &req) {
		return
	}
	serviceresponse := h.services.UpdateMarathon(r.Context(), userID, mux.Vars(r)["id"], &req)
	if h.badServiceResponse(w, r, serviceresponse, traceID, place) {
		return
	}
	response.SendResponse(r.Context(), w, true, map[string]any{"marathon": serviceresponse.Data.Marathon}, nil, http.StatusOK, traceID, place, h.logproducer)
}
func (h *Handler) GetMyMarathons(w http.ResponseWriter, r *http.Request) {
	const place = API_GetMyMarathons
	traceID := getTraceID(r)
	userID, ok := h.getUserID(w, r, traceID, place)
	if !ok {
		return
	}
	serviceresponse := h.services.GetMyMarathons(r.Context(), userID)
	if h.badServiceResponse(w, r, serviceresponse, traceID, place) {
		return
	}
	response.SendResponse(r.Context(), w, true, map[string]any{"marathons": serviceresponse.Data.Marathons}, nil, http.StatusOK, traceID, place, h.logproducer)
}
func (h *Handler) GetActiveMarathons(w http.ResponseWriter, r *http.Request) {
	const place = API_GetActiveMarathons
	traceID := getTraceID(r)
	serviceresponse := h.services.GetActiveMarathons(r.Context())
	if h.badServiceResponse(w, r, serviceresponse, traceID, place) {
		return
	}
	response.SendResponse(r.Context(), w, true, map[string]any{"marathons": serviceresponse.Data.Marathons}, nil, http.StatusOK, traceID, place, h.logproducer)
}
