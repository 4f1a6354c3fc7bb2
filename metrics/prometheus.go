package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aponysus/verdict/classify"
)

// Observer implements classify.Observer by counting classification activity.
type Observer struct {
	outcomes *prometheus.CounterVec
	opinions *prometheus.CounterVec
}

// NewObserver creates an Observer and registers its collectors with reg.
// A nil reg leaves the collectors unregistered, which is useful in tests.
func NewObserver(reg prometheus.Registerer) *Observer {
	o := &Observer{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verdict_outcomes_total",
				Help: "Final classification outcomes, per attempt",
			},
			[]string{"outcome", "category"},
		),
		opinions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verdict_opinions_total",
				Help: "Individual classifier opinions, including abstentions",
			},
			[]string{"classifier", "outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(o.outcomes, o.opinions)
	}
	return o
}

func (o *Observer) OnOpinion(name string, _ *classify.Attempt, out classify.Outcome) {
	o.opinions.WithLabelValues(name, out.Kind.String()).Inc()
}

func (o *Observer) OnOutcome(_ *classify.Attempt, out classify.Outcome) {
	var category string
	if reason, ok := out.Reason.(classify.RetryableError); ok {
		category = reason.Category.String()
	}
	o.outcomes.WithLabelValues(out.Kind.String(), category).Inc()
}
