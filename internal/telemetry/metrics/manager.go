package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterMealPlansGenerated  prometheus.Counter
	CounterTrainingPlans       prometheus.Counter
	CounterGenerationFailures  *prometheus.CounterVec
	CounterUnmatchedIngredient prometheus.Counter
	CounterCheckIns            prometheus.Counter
	CounterMacroAdjustments    prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistPlanCorrectionDuration prometheus.Histogram
	HistogramRequestDuration   *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterMealPlansGenerated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "meal_plans_generated",
		Help:      "The total number of meal plans generated and persisted",
	})
	counterTrainingPlans := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "training_plans_generated",
		Help:      "The total number of training plans generated and persisted",
	})
	counterGenerationFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "generation_failures",
		Help:      "Plan generation failures by kind (empty, truncated, malformed, shape)",
	}, []string{"kind"})
	counterUnmatchedIngredient := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "unmatched_ingredients",
		Help:      "Ingredients whose macros could not be resolved against the nutrient db",
	})
	counterCheckIns := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "checkins",
		Help:      "The total number of accepted weekly check-ins",
	})
	counterMacroAdjustments := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "macro_adjustments_proposed",
		Help:      "The total number of pending macro adjustments created",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histPlanCorrectionDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60},
			Name:      "meal_plan_correction_duration_seconds",
			Help:      "Total duration of a single meal plan macro correction pass in seconds",
		},
	)

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterMealPlansGenerated:  counterMealPlansGenerated,
		CounterTrainingPlans:       counterTrainingPlans,
		CounterGenerationFailures:  counterGenerationFailures,
		CounterUnmatchedIngredient: counterUnmatchedIngredient,
		CounterCheckIns:            counterCheckIns,
		CounterMacroAdjustments:    counterMacroAdjustments,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistPlanCorrectionDuration: histPlanCorrectionDuration,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
