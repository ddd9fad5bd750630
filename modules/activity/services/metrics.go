package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	depthRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "activity_depth_rejections_total",
		Help: "Activity creations refused because the parent was already at the maximum depth.",
	})
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activity_descendant_cache_lookups_total",
		Help: "Descendant closure cache lookups by result.",
	}, []string{"result"})
)
