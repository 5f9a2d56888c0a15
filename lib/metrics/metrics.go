package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hr"

type DocumentAction string

const (
	ActionSave   DocumentAction = "save"
	ActionEdit   DocumentAction = "edit"
	ActionSubmit DocumentAction = "submit"
)

type ServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	documentsTotal  *prometheus.CounterVec
	remindersTotal  prometheus.Counter
}

var Instance *ServerMetrics

func NewHandler() {
	Instance = NewServerMetrics()
}

func NewServerMetrics() *ServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	documentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "documents_total",
			Help:      "Onboarding document operations by document type and action.",
		},
		[]string{"type", "action"},
	)
	remindersTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "onboarding",
			Name:      "reminders_sent_total",
			Help:      "Onboarding reminder emails sent.",
		},
	)

	registry.MustRegister(requestTotal, requestDuration, documentsTotal, remindersTotal)

	return &ServerMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		documentsTotal:  documentsTotal,
		remindersTotal:  remindersTotal,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest - path must be the route template, not the raw url, to keep label cardinality bounded
func (m *ServerMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requestTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *ServerMetrics) RecordDocument(docType string, action DocumentAction) {
	m.documentsTotal.WithLabelValues(docType, string(action)).Inc()
}

func (m *ServerMetrics) RecordReminder() {
	m.remindersTotal.Inc()
}
