package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BoletasCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boletas_created_total",
		Help: "Total number of boletas created",
	})

	BoletasFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boletas_failed_total",
		Help: "Total number of failed boleta creations",
	}, []string{"reason"})

	BoletasStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boletas_status_changes_total",
		Help: "Total number of boleta status transitions",
	}, []string{"estado"})

	BoletasDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boletas_deleted_total",
		Help: "Total number of boletas deleted",
	})

	StockDecrementedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_decremented_total",
		Help: "Total units of stock decremented by boleta creation",
	})

	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Total number of successful logins",
	})

	LoginFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "login_failures_total",
		Help: "Total number of failed login attempts",
	})

	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registrations_total",
		Help: "Total number of registered users",
	})

	CatalogCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_hits_total",
		Help: "Catalog cache lookups by outcome",
	}, []string{"outcome"})

	BoletaCreateLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boleta_create_latency_seconds",
		Help:    "Latency of the boleta creation transaction",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
