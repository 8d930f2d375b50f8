package ftracker

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// ProcessorMetrics holds the Processor counters. A nil *ProcessorMetrics records nothing.
type ProcessorMetrics struct {
	processed *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	calories  *prometheus.CounterVec
}

// NewProcessorMetrics creates the processor counters and registers them with reg.
func NewProcessorMetrics(reg prometheus.Registerer) (*ProcessorMetrics, error) {
	m := &ProcessorMetrics{
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Subsystem: "processor",
			Name:      "workouts_processed_total",
			Help:      "Number of workouts summarized, by workout kind.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Subsystem: "processor",
			Name:      "workouts_rejected_total",
			Help:      "Number of workout packages rejected, by reason.",
		}, []string{"reason"}),
		calories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Subsystem: "processor",
			Name:      "calories_kcal_total",
			Help:      "Calories computed across summarized workouts, by workout kind.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.processed, m.rejected, m.calories} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *ProcessorMetrics) recordProcessed(kind Kind, calories float64) {
	if m == nil {
		return
	}
	m.processed.WithLabelValues(kind.String()).Inc()
	if calories > 0 {
		m.calories.WithLabelValues(kind.String()).Add(calories)
	}
}

func (m *ProcessorMetrics) recordRejected(err error) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(rejectReason(err)).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownWorkoutCode):
		return "unknown_code"
	case errors.Is(err, ErrBadArity):
		return "bad_arity"
	case errors.Is(err, ErrInvalidWorkoutKind):
		return "invalid_kind"
	case errors.Is(err, ErrInvalidRecord):
		return "invalid_record"
	default:
		return "other"
	}
}
