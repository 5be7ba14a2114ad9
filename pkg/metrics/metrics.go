// Package metrics provides prometheus collectors of fdod.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fdod"

// Outcome of a single FDO lookup.
type Outcome string

const (
	OutcomeOK                 Outcome = "ok"
	OutcomeInvalidIdentifier  Outcome = "invalid_identifier"
	OutcomeNotFound           Outcome = "not_found"
	OutcomeBackendUnavailable Outcome = "backend_unavailable"
	OutcomeBackendTimeout     Outcome = "backend_timeout"
	OutcomeInternal           Outcome = "internal"
)

// OutcomeOf classifies an error returned from wikibase.Client.
//
// nil is OutcomeOK.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, wikibase.ErrInvalidIdentifier):
		return OutcomeInvalidIdentifier
	case errors.Is(err, wikibase.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, wikibase.ErrBackendTimeout):
		return OutcomeBackendTimeout
	case errors.Is(err, wikibase.ErrBackendUnavailable):
		return OutcomeBackendUnavailable
	default:
		return OutcomeInternal
	}
}

// Metrics records lookups.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests       *prometheus.CounterVec
	backendLatency *prometheus.HistogramVec
}

// New creates Metrics and registers its collectors to reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fdo",
			Name:      "requests_total",
			Help:      "Total number of FDO lookups by outcome",
		}, []string{"outcome"}),

		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of entity fetches from the knowledge graph in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.backendLatency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records an outcome of a lookup.
func (m *Metrics) Observe(o Outcome) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(o)).Inc()
}

// ObserveFetch records a duration of a fetch from the backend.
func (m *Metrics) ObserveFetch(o Outcome, d time.Duration) {
	if m == nil {
		return
	}
	m.backendLatency.WithLabelValues(string(o)).Observe(d.Seconds())
}

// Handler exposes metrics gathered by g in the prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
