package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts computed schedules and their size.
type Recorder interface {
	ObserveSchedule(source string, trips int)
}

// NopRecorder discards observations.
type NopRecorder struct{}

func (NopRecorder) ObserveSchedule(string, int) {}

// PromRecorder records schedule metrics in Prometheus collectors.
type PromRecorder struct {
	schedules *prometheus.CounterVec
	trips     prometheus.Histogram
}

// NewPromRecorder registers the schedule collectors on reg.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	schedules := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedules_computed_total",
		Help: "Total number of trip schedules computed",
	}, []string{"source"})
	trips := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_trips",
		Help:    "Number of trips per computed schedule",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	if err := reg.Register(schedules); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		schedules = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(trips); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		trips = are.ExistingCollector.(prometheus.Histogram)
	}

	return &PromRecorder{schedules: schedules, trips: trips}, nil
}

// ObserveSchedule increments the counter for source and records the trip count.
func (r *PromRecorder) ObserveSchedule(source string, trips int) {
	r.schedules.WithLabelValues(source).Inc()
	r.trips.Observe(float64(trips))
}
