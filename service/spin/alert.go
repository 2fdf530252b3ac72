package spin

import (
	"context"
	"sync"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/pkg/otellib"
	"go.uber.org/zap"
)

// alertLimiter rate-limits operational events to one per key per interval
type alertLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
}

func newAlertLimiter(interval time.Duration) *alertLimiter {
	return &alertLimiter{
		interval: interval,
		last:     map[string]time.Time{},
	}
}

func (a *alertLimiter) Allow(key string, now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	last, ok := a.last[key]
	if ok && now.Sub(last) < a.interval {
		return false
	}
	a.last[key] = now
	return true
}

// reportSafeMode records a safe-mode activation for observability. Writes
// are best-effort and must never fail the spin request, which is why this
// runs after the allocation transaction has committed.
func (s *Service) reportSafeMode(ctx context.Context, reason, scope string, now time.Time) {
	if !s.alerts.Allow(reason+":"+scope, now) {
		return
	}

	safeModeTotal.WithLabelValues(reason).Inc()
	otellib.Extract(ctx).Warn("safe mode active",
		zap.String("reason", reason),
		zap.String("scope", scope),
	)

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.opsRepo.InsertOpsEvent(ctx, model.OpsEvent{
			Kind:      model.OpsEventKindSafeMode,
			Scope:     scope,
			Message:   "safe mode triggered by " + reason,
			CreatedAt: now.UTC(),
		})
	})
	if err != nil {
		otellib.Extract(ctx).Error("write safe mode ops event", zap.Error(err))
	}
}
