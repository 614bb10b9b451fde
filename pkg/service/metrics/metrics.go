package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
)

// Rejection reasons
const (
	ReasonDomainViolation = "domain_violation"
	ReasonOther           = "other"
)

// Collector exports evaluation outcomes as Prometheus metrics. It implements
// interfaces.EvaluationObserver.
type Collector struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	probability *prometheus.HistogramVec
}

// New creates a Collector with its own registry
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "threatcalc_evaluations_total",
			Help: "Total evaluations by model and resulting risk tier",
		}, []string{"model", "tier"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "threatcalc_rejections_total",
			Help: "Total rejected evaluations by model and reason",
		}, []string{"model", "reason"}),
		probability: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "threatcalc_success_probability",
			Help:    "Distribution of evaluated success probabilities",
			Buckets: []float64{types.ModerateThreshold, types.SignificantThreshold, types.HighThreshold, 0.5, 1},
		}, []string{"model"}),
	}

	c.registry.MustRegister(c.evaluations, c.rejections, c.probability)
	return c
}

func (c *Collector) ObserveEvaluation(_ context.Context, modelName string, probability float64, tier types.RiskTier) {
	c.evaluations.WithLabelValues(modelName, tier.String()).Inc()
	c.probability.WithLabelValues(modelName).Observe(probability)
}

func (c *Collector) ObserveRejection(_ context.Context, modelName string, err error) {
	reason := ReasonOther
	if errors.Is(err, model.ErrDomainViolation) {
		reason = ReasonDomainViolation
	}
	c.rejections.WithLabelValues(modelName, reason).Inc()
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collected metrics in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
