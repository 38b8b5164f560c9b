package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PhotoTotalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photo_service_requests_total",
	Help: "Total number of requests to Photo-Service",
}, []string{"path"})
var PhotoRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photo_service_duration_seconds",
	Help:    "Histogram for the request duration in seconds in Photo-Service",
	Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
}, []string{"path"})
var PhotoErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photo_service_errors_total",
	Help: "Total number of errors encountered by the Photo-Service",
}, []string{"error_type"})
var PhotoTotalSuccessfulRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photo_service_successful_requests_total",
	Help: "Total number of successful requests to Photo-Service",
}, []string{"path"})
var PhotoRateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photo_service_rate_limit_exceeded_total",
	Help: "Total number of requests rejected by the rate limiter",
}, []string{"path"})
var PhotoPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "photo_service_panics_total",
	Help: "Total number of recovered handler panics",
})
var PhotoPipelineStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photo_service_pipeline_stage_duration_seconds",
	Help:    "Histogram for the duration of each upload pipeline stage",
	Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
}, []string{"stage"})
var PhotoOCRFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "photo_service_ocr_failures_total",
	Help: "Total number of uploads that continued without recognized numbers after an OCR failure",
})
var PhotoNumbersDetected = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "photo_service_numbers_detected",
	Help:    "Number of candidate bib numbers detected per uploaded photo",
	Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
})
var PhotoSearchCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photo_service_search_cache_total",
	Help: "Search cache lookups by result",
}, []string{"result"})
var PhotoDBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "photo_service_db_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the database",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
}, []string{"query_type"})
var PhotoDBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "photo_service_db_queries_total",
	Help: "Total number of queries executed on the database",
}, []string{"query_type"})
var PhotoTaskQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photo_service_task_queue_size",
	Help: "Current number of pending background tasks",
})
var PhotoMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "photo_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})

var stop = make(chan struct{})
var stopOnce sync.Once

func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				PhotoMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}
func Stop() {
	stopOnce.Do(func() { close(stop) })
}
func DBMetrics(place string, start time.Time) {
	PhotoDBQueriesTotal.WithLabelValues(place).Inc()
	PhotoDBQueryDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
}
func StageMetrics(stage string, start time.Time) {
	PhotoPipelineStageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
