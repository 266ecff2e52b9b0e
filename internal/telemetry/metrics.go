// Package telemetry declares the prometheus metrics recorded by the containers.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SoftFailureCounter counts operations that turned into no-ops because the
// container they were called on was empty.
var SoftFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "datastructs",
	Name:      "soft_failures_total",
	Help:      "The total number of operations that were a no-op because the container was empty.",
}, []string{"container", "operation"})
