package spin

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinwheel_spins_total",
		Help: "Completed spins by prize kind",
	}, []string{"kind"})

	denialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinwheel_denials_total",
		Help: "Denied spin requests by reason",
	}, []string{"reason"})

	safeModeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinwheel_safe_mode_total",
		Help: "Safe mode activations by trigger",
	}, []string{"reason"})

	superBudgetRejectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spinwheel_super_budget_rejects_total",
		Help: "Super spin draws discarded at the budget re-check",
	})
)

func observeDenial(err error) {
	var quotaErr *QuotaError
	switch {
	case errors.Is(err, ErrCooldownActive):
		denialsTotal.WithLabelValues("cooldown").Inc()
	case errors.Is(err, ErrSuspiciousActivity):
		denialsTotal.WithLabelValues("fraud").Inc()
	case errors.As(err, &quotaErr):
		denialsTotal.WithLabelValues("quota").Inc()
	}
}
