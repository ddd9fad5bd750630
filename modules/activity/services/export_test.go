package services

import "github.com/prometheus/client_golang/prometheus"

func DepthRejections() prometheus.Counter { return depthRejections }
