package spin

import (
	"context"
	"database/sql"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/pkg/wheel"
)

func (s *Service) draw(pool []candidate) candidate {
	weights := make([]int64, 0, len(pool))
	for _, cand := range pool {
		weights = append(weights, cand.weight)
	}
	return pool[wheel.Pick(s.rand, weights)]
}

// drawWithRerollRules draws from the pool and enforces the extra-spin
// constraints: at most one per user per day and never two back-to-back.
// Violating draws redraw from an extra-spin-free pool, bounded, with the
// safe prize as the final fallback.
func (s *Service) drawWithRerollRules(
	ctx context.Context, pool []candidate, userID string, now time.Time,
) (candidate, error) {
	cand := s.draw(pool)
	if cand.kind != model.PrizeKindExtraSpin {
		return cand, nil
	}

	blocked, err := s.extraSpinBlocked(ctx, userID, now)
	if err != nil {
		return candidate{}, err
	}
	if !blocked {
		return cand, nil
	}

	var filtered []candidate
	for _, c := range pool {
		if c.kind != model.PrizeKindExtraSpin {
			filtered = append(filtered, c)
		}
	}

	for attempt := 0; attempt < s.conf.MaxRedrawAttempts; attempt++ {
		if len(filtered) == 0 {
			break
		}
		cand = s.draw(filtered)
		if cand.kind != model.PrizeKindExtraSpin {
			return cand, nil
		}
	}

	return s.safeCandidate(ctx)
}

func (s *Service) extraSpinBlocked(
	ctx context.Context, userID string, now time.Time,
) (bool, error) {
	count, err := s.ledgerRepo.CountUserExtraSpins(ctx, userID, s.localDayStart(now))
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	last, err := s.ledgerRepo.GetLastSpinRecord(ctx, userID)
	if err != nil {
		return false, err
	}
	return last.Valid && last.Record.PrizeKind == model.PrizeKindExtraSpin, nil
}

// trySuperSpin draws once from the super pool under the event row lock and
// commits the budget increment only when it fits. A draw that does not fit
// discards silently, the request degrades into a normal spin.
func (s *Service) trySuperSpin(
	ctx context.Context, userID string, super superState,
) (candidate, bool, error) {
	event, err := s.eventRepo.LockSuperEvent(ctx, super.event.ID)
	if err != nil {
		return candidate{}, false, err
	}

	// the availability check ran before the transaction, re-validate the
	// one-grant-per-user rule under the lock
	granted, err := s.ledgerRepo.HasSuperSpin(ctx, userID, event.ID)
	if err != nil {
		return candidate{}, false, err
	}
	if granted {
		return candidate{}, false, nil
	}

	weights := make([]int64, 0, len(super.prizes))
	for _, p := range super.prizes {
		weights = append(weights, p.Weight)
	}
	prize := super.prizes[wheel.Pick(s.rand, weights)]

	if event.BudgetUsed.Add(prize.Value).GreaterThan(event.BudgetTotal) {
		superBudgetRejectsTotal.Inc()
		return candidate{}, false, nil
	}

	ok, err := s.eventRepo.AddBudgetUsed(ctx, event.ID, prize.Value)
	if err != nil {
		return candidate{}, false, err
	}
	if !ok {
		superBudgetRejectsTotal.Inc()
		return candidate{}, false, nil
	}

	return candidate{
		prizeKey:       "super:" + event.Name,
		label:          event.Name,
		kind:           model.PrizeKindCash,
		value:          prize.Value,
		superEventID:   sql.NullInt64{Valid: true, Int64: event.ID},
		superEventName: event.Name,
	}, true, nil
}
