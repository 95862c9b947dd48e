package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TripsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jelajah",
		Name:      "trips_generated_total",
		Help:      "Generated itineraries by kind (generate, regenerate) and outcome (populated, empty).",
	}, []string{"kind", "outcome"})

	TripGenerationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jelajah",
		Name:      "trip_generation_seconds",
		Help:      "Time spent generating an itinerary.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	PlansSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jelajah",
		Name:      "plans_saved_total",
		Help:      "Travel plans persisted from drafts.",
	})
)
