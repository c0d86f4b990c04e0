package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metrics of data generation registered in a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ValuesGenerated *prometheus.CounterVec
	LoaderMisses    *prometheus.CounterVec
	TasksFinished   *prometheus.CounterVec
}

// New creates Metrics with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ValuesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mimesis_values_generated_total",
			Help: "Total number of generated values by provider method key",
		}, []string{"key"}),
		LoaderMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mimesis_locale_loader_misses_total",
			Help: "Total number of locale data cache misses by file and locale",
		}, []string{"file", "locale"}),
		TasksFinished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mimesis_tasks_finished_total",
			Help: "Total number of finished schema generation tasks by status",
		}, []string{"status"}),
	}
}

// AddValuesGenerated adds count to generated values of key.
func (m *Metrics) AddValuesGenerated(key string, count int) {
	if m == nil || count <= 0 {
		return
	}

	m.ValuesGenerated.WithLabelValues(key).Add(float64(count))
}

// IncrementLoaderMiss records a locale data cache miss. It fits locale.WithMissHook.
func (m *Metrics) IncrementLoaderMiss(fileName, code string) {
	if m == nil {
		return
	}

	m.LoaderMisses.WithLabelValues(fileName, code).Inc()
}

// IncrementTaskFinished records finished task, failed if err is not nil.
func (m *Metrics) IncrementTaskFinished(err error) {
	if m == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}

	m.TasksFinished.WithLabelValues(status).Inc()
}

// Registry returns registry metrics are registered in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns HTTP handler exposing metrics in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
