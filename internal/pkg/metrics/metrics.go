// Package metrics - Prometheus метрики дашборда на собственном реестре.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Виды деградированных ответов
const (
	DegradedMissingMetric   = "missing_metric"
	DegradedMissingGeometry = "missing_geometry"
	DegradedEmptyTrend      = "empty_trend"
)

// Manager хранит все метрики сервиса
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	datasetRows         *prometheus.GaugeVec
	datasetDuplicates   *prometheus.GaugeVec
	degraded            *prometheus.CounterVec
	renderDuration      *prometheus.HistogramVec
}

// Option настраивает Manager
type Option func(*Manager)

// WithNamespace задаёт namespace всех метрик
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets задаёт бакеты гистограмм задержек (секунды)
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry подменяет реестр (для тестов)
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// NewManager создаёт и регистрирует метрики
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "vaccination_dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.datasetRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "dataset_rows",
		Help:      "Number of rows loaded per dataset",
	}, []string{"dataset"})

	m.datasetDuplicates = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "dataset_duplicate_rows",
		Help:      "Number of duplicate (region, year) rows dropped at load",
	}, []string{"dataset"})

	m.degraded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "degraded_responses_total",
		Help:      "Responses rendered partially because data was missing",
	}, []string{"kind"})

	m.renderDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "render_duration_seconds",
		Help:      "Image rendering duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"image"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveHTTP учитывает обработанный запрос
func (m *Manager) ObserveHTTP(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// SetDatasetRows - размер загруженной таблицы
func (m *Manager) SetDatasetRows(dataset string, rows, duplicates int) {
	m.datasetRows.WithLabelValues(dataset).Set(float64(rows))
	m.datasetDuplicates.WithLabelValues(dataset).Set(float64(duplicates))
}

// IncDegraded - ответ отдан без части данных
func (m *Manager) IncDegraded(kind string) {
	m.degraded.WithLabelValues(kind).Inc()
}

// ObserveRender - время отрисовки изображения
func (m *Manager) ObserveRender(image string, d time.Duration) {
	m.renderDuration.WithLabelValues(image).Observe(d.Seconds())
}

// Handler - http.Handler для /metrics
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
