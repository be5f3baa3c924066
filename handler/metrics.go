package handler

import "github.com/prometheus/client_golang/prometheus"

var relayOutcomesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "relay_outcomes_total",
		Help: "Relay and diagnostic results by outcome.",
	},
	[]string{"endpoint", "outcome"},
)

func init() {
	prometheus.MustRegister(relayOutcomesTotal)
}

func recordOutcome(endpoint, outcome string) {
	relayOutcomesTotal.WithLabelValues(endpoint, outcome).Inc()
}
