// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// # Metrics

// Metrics holds the HTTP collectors exported on /metrics.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the request collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casting_http_requests_total",
				Help: "Count of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "casting_http_request_duration_seconds",
				Help:    "Time taken to handle an HTTP request",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registerer.MustRegister(metrics.requests, metrics.duration)
	return metrics
}

// Middleware records one observation per request, labelled with the chi
// route pattern instead of the raw path.
func (metrics *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(recorder, request)

			route := routePattern(request)
			metrics.requests.WithLabelValues(request.Method, route, strconv.Itoa(recorder.status)).Inc()
			metrics.duration.WithLabelValues(request.Method, route).Observe(time.Since(startTime).Seconds())
		})
	}
}
