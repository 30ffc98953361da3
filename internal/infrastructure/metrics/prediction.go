package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"house_price/internal/domain/entity"
)

const namespace = "house_price"

// PredictionRecorder считает исходы оценок и их длительность.
type PredictionRecorder struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPredictionRecorder(reg prometheus.Registerer) (*PredictionRecorder, error) {
	r := &PredictionRecorder{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Prediction requests by outcome.",
		}, []string{"status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent validating and estimating a request.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{r.outcomes, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("reg.Register: %w", err)
		}
	}

	// Нулевые серии сразу видны в /metrics.
	for _, status := range []entity.PredictionStatus{
		entity.PredictionSucceeded,
		entity.PredictionRejected,
		entity.PredictionUnavailable,
		entity.PredictionFailed,
	} {
		r.outcomes.WithLabelValues(status.String())
	}

	return r, nil
}

func (r *PredictionRecorder) Observe(status entity.PredictionStatus, elapsed time.Duration) {
	r.outcomes.WithLabelValues(status.String()).Inc()
	r.duration.WithLabelValues(status.String()).Observe(elapsed.Seconds())
}
