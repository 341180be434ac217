package rangetree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// buildsTotal counts successful builds per database name
	buildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointdb_builds_total",
		Help: "Total point database builds",
	}, []string{"index"})

	// indexedPoints is the point count of the last build per database name
	indexedPoints = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pointdb_points",
		Help: "Number of points held by the point database",
	}, []string{"index"})

	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointdb_queries_total",
		Help: "Total nearby searches",
	}, []string{"index"})

	// queryResults tracks how many points each search returned
	queryResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pointdb_query_results",
		Help:    "Number of points returned per nearby search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
	}, []string{"index"})
)
