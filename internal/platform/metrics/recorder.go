// Package metrics exposes the bot's domain counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

const namespace = "corgibot"

// Recorder implements ports.Recorder with Prometheus counters.
type Recorder struct {
	triggers  *prometheus.CounterVec
	actions   *prometheus.CounterVec
	apologies *prometheus.CounterVec
	quotes    prometheus.Counter
	ambient   prometheus.Counter
}

// NewRecorder creates the counters and registers them on reg. A nil reg
// uses prometheus.DefaultRegisterer, which is what /-/metrics serves.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mentions_total",
			Help:      "Mentions handled, by classified trigger.",
		}, []string{"trigger"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Affection actions applied, by kind and resulting tone.",
		}, []string{"kind", "tone"}),
		apologies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "apologies_total",
			Help:      "Apologies attempted, by outcome.",
		}, []string{"outcome"}),
		quotes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_stored_total",
			Help:      "Quotes stored.",
		}),
		ambient: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ambient_replies_total",
			Help:      "Unprompted replies emitted.",
		}),
	}

	for _, c := range []prometheus.Collector{r.triggers, r.actions, r.apologies, r.quotes, r.ambient} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Trigger counts a classified mention.
func (r *Recorder) Trigger(kind domain.TriggerKind) {
	r.triggers.WithLabelValues(kind.String()).Inc()
}

// Action counts an applied action.
func (r *Recorder) Action(kind domain.ActionKind, tone domain.Tone) {
	r.actions.WithLabelValues(string(kind), tone.String()).Inc()
}

// Apology counts an apology outcome.
func (r *Recorder) Apology(outcome domain.ApologyOutcome) {
	r.apologies.WithLabelValues(outcome.String()).Inc()
}

// QuoteStored counts a stored quote.
func (r *Recorder) QuoteStored() { r.quotes.Inc() }

// AmbientFired counts an unprompted reply.
func (r *Recorder) AmbientFired() { r.ambient.Inc() }
