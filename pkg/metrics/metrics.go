package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллектор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках вызовы ничего не делают
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	basketOperations    *prometheus.CounterVec
	sessionsAssembled   *prometheus.HistogramVec
	quoteTotals         prometheus.Histogram
}

// New создает коллектор с собственным реестром
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		basketOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "basket_operations_total",
			Help:        "Basket operations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
		sessionsAssembled: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "sessions_assembled",
			Help:        "Number of sessions produced per assembly",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"length"}),
		quoteTotals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "quote_total_amount",
			Help:        "Quoted basket totals",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 25, 50, 100, 200, 400, 800},
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.basketOperations,
		m.sessionsAssembled,
		m.quoteTotals,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) RecordBasketOperation(operation, result string) {
	if m == nil {
		return
	}
	m.basketOperations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) RecordSessionsAssembled(length string, count int) {
	if m == nil {
		return
	}
	m.sessionsAssembled.WithLabelValues(length).Observe(float64(count))
}

func (m *Metrics) RecordQuoteTotal(total float64) {
	if m == nil {
		return
	}
	m.quoteTotals.Observe(total)
}
