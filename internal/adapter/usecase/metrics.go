package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gtm_compute_total",
		Help: "Number of model computations requested.",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gtm_compute_cache_hits_total",
		Help: "Model computations served from the memoization cache.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gtm_compute_cache_misses_total",
		Help: "Model computations that ran the engine.",
	})
)
