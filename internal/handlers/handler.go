package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robklaiss/foteam/internal/handlers/middleware"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/robklaiss/foteam/internal/service"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handlers.go -package=mock_handlers
type PhotoService interface {
	UploadPhoto(ctx context.Context, userid string, filename string, contentType string, data []byte, marathonid string) *service.ServiceResponse
	SearchPhotos(ctx context.Context, marathonid string, numbers []string, page int, pageSize int) *service.ServiceResponse
	CreateMarathon(ctx context.Context, userid string, req *model.MarathonRequest) *service.ServiceResponse
	UpdateMarathon(ctx context.Context, userid string, marathonid string, req *model.MarathonRequest) *service.ServiceResponse
	GetMyMarathons(ctx context.Context, userid string) *service.ServiceResponse
	GetActiveMarathons(ctx context.Context) *service.ServiceResponse
}
type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}

const API_UploadPhoto = "API-UploadPhoto"
const API_SearchPhotos = "API-SearchPhotos"
const API_CreateMarathon = "API-CreateMarathon"
const API_UpdateMarathon = "API-UpdateMarathon"
const API_GetMyMarathons = "API-GetMyMarathons"
const API_GetActiveMarathons = "API-GetActiveMarathons"

type Limits struct {
	MaxFileSize        int64
	MaxMultipartMemory int64
	DefaultPageSize    int
}
type Handler struct {
	services    PhotoService
	logproducer LogProducer
	middleware  middleware.MiddlewareService
	limits      Limits
}

func NewHandler(services PhotoService, logproducer LogProducer, mw middleware.MiddlewareService, limits Limits) *Handler {
	if limits.MaxFileSize <= 0 {
		limits.MaxFileSize = 16 << 20
	}
	if limits.MaxMultipartMemory <= 0 {
		limits.MaxMultipartMemory = 32 << 20
	}
	if limits.DefaultPageSize <= 0 {
		limits.DefaultPageSize = 24
	}
	return &Handler{services: services, logproducer: logproducer, middleware: mw, limits: limits}
}
func (h *Handler) InitRoutes() *mux.Router {
	m := mux.NewRouter()
	m.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	api := m.PathPrefix("/").Subrouter()
	api.Use(h.middleware.Logging, h.middleware.Recovery)
	mw := h.middleware
	api.Handle("/photos", mw.Authorized(mw.RateLimiter(http.HandlerFunc(h.UploadPhoto)))).Methods(http.MethodPost)
	api.HandleFunc("/photos", h.SearchPhotos).Methods(http.MethodGet)
	api.HandleFunc("/marathons", h.GetActiveMarathons).Methods(http.MethodGet)
	api.Handle("/marathons/my", mw.Authorized(http.HandlerFunc(h.GetMyMarathons))).Methods(http.MethodGet)
	api.Handle("/marathons", mw.Authorized(http.HandlerFunc(h.CreateMarathon))).Methods(http.MethodPost)
	api.Handle("/marathons/{id}", mw.Authorized(http.HandlerFunc(h.UpdateMarathon))).Methods(http.MethodPatch)
	return m
}
