// Package metrics объявляет метрики Prometheus сервиса. Все метрики
// регистрируются в реестре по умолчанию через promauto и отдаются на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mindora"

// HTTPRequestsTotal число обработанных HTTP-запросов.
// Метки: method, route (шаблон маршрута chi), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration длительность обработки HTTP-запроса.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthAttemptsTotal попытки регистрации и входа.
// Метки: action (register, login), result (success, invalid, duplicate, error).
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Registration and login attempts by result.",
	},
	[]string{"action", "result"},
)

// RecordsCreatedTotal созданные пользовательские записи.
// Метка kind: mood или journal.
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Mood and journal records created.",
	},
	[]string{"kind"},
)

// CacheLookupsTotal обращения к кешу каталога статей.
// Метка result: hit, miss или error.
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_lookups_total",
		Help:      "Support catalog cache lookups by result.",
	},
	[]string{"result"},
)
