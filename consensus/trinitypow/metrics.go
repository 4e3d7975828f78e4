package trinitypow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	retargetClampCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trinity",
		Subsystem: "pow",
		Name:      "retarget_clamped_total",
		Help:      "Retargets whose actual timespan hit an adjustment bound.",
	})

	powFailCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trinity",
		Subsystem: "pow",
		Name:      "check_failed_total",
		Help:      "Proof-of-work checks that rejected a block.",
	})
)
