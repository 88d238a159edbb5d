// Package metrics exposes Prometheus collectors for the HTTP layer and the
// score book.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the service reports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	gamesCreated   prometheus.Counter
	gamesEnded     prometheus.Counter
	gamesDeleted   prometheus.Counter
	roundsRecorded prometheus.Counter
	playersAdded   prometheus.Counter
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "somenerts_http_requests_total",
				Help: "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "somenerts_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		gamesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "somenerts_games_created_total",
			Help: "Games started.",
		}),
		gamesEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "somenerts_games_ended_total",
			Help: "Games concluded and folded into statistics.",
		}),
		gamesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "somenerts_games_deleted_total",
			Help: "Games discarded.",
		}),
		roundsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "somenerts_rounds_recorded_total",
			Help: "Rounds stored across all games.",
		}),
		playersAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "somenerts_players_added_total",
			Help: "Player records created with new games.",
		}),
	}
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// GameCreated counts a new game and its players
func (m *Metrics) GameCreated(players int) {
	if m == nil {
		return
	}
	m.gamesCreated.Inc()
	m.playersAdded.Add(float64(players))
}

// GameEnded counts a concluded game
func (m *Metrics) GameEnded() {
	if m == nil {
		return
	}
	m.gamesEnded.Inc()
}

// GameDeleted counts a discarded game
func (m *Metrics) GameDeleted() {
	if m == nil {
		return
	}
	m.gamesDeleted.Inc()
}

// RoundRecorded counts a stored round
func (m *Metrics) RoundRecorded() {
	if m == nil {
		return
	}
	m.roundsRecorded.Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
