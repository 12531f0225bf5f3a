package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records dispatch activity in Prometheus metrics.
type PromSink struct {
	acceptOutcomes *prometheus.CounterVec
	notifyFanout   *prometheus.HistogramVec
	pushBatches    *prometheus.CounterVec
	pushTokens     *prometheus.CounterVec
	sweepCancelled prometheus.Counter
}

// NewPromSink registers dispatch metrics on the provided registerer. If reg
// is nil, the default registerer is used. Already-registered collectors are
// reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	acceptOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_accept_attempts_total",
		Help: "Accept attempts by outcome (won, race_lost, error)",
	}, []string{"outcome"})

	notifyFanout := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_notify_fanout_size",
		Help:    "Candidates and tokens resolved per notify call",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 30, 50},
	}, []string{"kind"})

	pushBatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_push_batches_total",
		Help: "Push gateway batches by success",
	}, []string{"ok"})

	pushTokens := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_push_tokens_total",
		Help: "Device tokens submitted to the push gateway by batch success",
	}, []string{"ok"})

	sweepCancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_sweep_cancelled_total",
		Help: "Stale pending requests cancelled by the sweeper",
	})

	collectors := []prometheus.Collector{acceptOutcomes, notifyFanout, pushBatches, pushTokens, sweepCancelled}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}

	return &PromSink{
		acceptOutcomes: collectors[0].(*prometheus.CounterVec),
		notifyFanout:   collectors[1].(*prometheus.HistogramVec),
		pushBatches:    collectors[2].(*prometheus.CounterVec),
		pushTokens:     collectors[3].(*prometheus.CounterVec),
		sweepCancelled: collectors[4].(prometheus.Counter),
	}, nil
}

func (s *PromSink) RecordAcceptOutcome(outcome string) {
	s.acceptOutcomes.WithLabelValues(outcome).Inc()
}

func (s *PromSink) RecordNotifyFanout(candidates, tokens int) {
	s.notifyFanout.WithLabelValues("candidates").Observe(float64(candidates))
	s.notifyFanout.WithLabelValues("tokens").Observe(float64(tokens))
}

func (s *PromSink) RecordPushBatch(ok bool, tokenCount int) {
	okLabel := strconv.FormatBool(ok)
	s.pushBatches.WithLabelValues(okLabel).Inc()
	s.pushTokens.WithLabelValues(okLabel).Add(float64(tokenCount))
}

func (s *PromSink) RecordSweepCancelled(n int64) {
	s.sweepCancelled.Add(float64(n))
}
