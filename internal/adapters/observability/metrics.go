package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pricing", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pricing", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pricing", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	Recommendations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pricing", Name: "recommendations_total", Help: "Computed recommendations by clamp outcome."},
		[]string{"clamp"}, // none|floor|ceiling
	)
	ReferenceSetSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pricing", Name: "reference_set_size",
			Help:    "Competitors entering the weighted average.",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		},
	)
	SeededHotels = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pricing", Name: "seeded_hotels_total", Help: "Catalog rows written by the seeder."},
		[]string{"result"}, // ok|error
	)
)

// Serve exposes the default registry on a side port. Empty addr disables it.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, Recommendations, ReferenceSetSize, SeededHotels)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveRecommendation(clamp string, referenceHotels int) {
	Recommendations.WithLabelValues(clamp).Inc()
	ReferenceSetSize.Observe(float64(referenceHotels))
}

func ObserveSeed(ok bool) {
	if ok {
		SeededHotels.WithLabelValues("ok").Inc()
		return
	}
	SeededHotels.WithLabelValues("error").Inc()
}
