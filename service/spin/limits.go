package spin

import (
	"context"
	"database/sql"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/shopspring/decimal"
)

const (
	safeModeReasonManual  = "manual_override"
	safeModeReasonDaily   = "daily_limit"
	safeModeReasonMonthly = "monthly_limit"
)

// scopeLimits is the effective spend cap for one request. An active
// merchant limit replaces the global one entirely, the operator kill
// switch applies in every scope.
type scopeLimits struct {
	merchantCode   sql.NullString
	daily          decimal.Decimal
	monthly        decimal.Decimal
	manualOverride bool
}

func (sc scopeLimits) name() string {
	if sc.merchantCode.Valid {
		return "merchant:" + sc.merchantCode.String
	}
	return "global"
}

// lockScope acquires the row locks serializing the allocation. The global
// limit row is always locked, every allocation in flight queues behind it,
// which is what makes the spend-check-then-write sequence atomic.
func (s *Service) lockScope(ctx context.Context, merchantCode string) (scopeLimits, error) {
	global, err := s.limitRepo.LockGlobalLimit(ctx)
	if err != nil {
		return scopeLimits{}, err
	}

	if merchantCode != "" {
		merchant, err := s.limitRepo.LockMerchantLimit(ctx, merchantCode)
		if err != nil {
			return scopeLimits{}, err
		}
		if merchant.Valid {
			return scopeLimits{
				merchantCode:   sql.NullString{Valid: true, String: merchantCode},
				daily:          merchant.Limit.DailyLimit,
				monthly:        merchant.Limit.MonthlyLimit,
				manualOverride: global.ManualOverride,
			}, nil
		}
	}

	return scopeLimits{
		daily:          global.DailyLimit,
		monthly:        global.MonthlyLimit,
		manualOverride: global.ManualOverride,
	}, nil
}

// budgetState is the scope limits plus the current-period ledger spend,
// read under the scope lock
type budgetState struct {
	scope scopeLimits
	spend model.SpendTotals
}

func (s *Service) loadBudget(
	ctx context.Context, scope scopeLimits, now time.Time,
) (budgetState, error) {
	spend, err := s.ledgerRepo.SumCashSpend(ctx,
		scope.merchantCode, utcDayStart(now), utcMonthStart(now))
	if err != nil {
		return budgetState{}, err
	}
	return budgetState{scope: scope, spend: spend}, nil
}

func (b budgetState) safeModeReason() string {
	if b.scope.manualOverride {
		return safeModeReasonManual
	}
	if b.spend.Daily.GreaterThanOrEqual(b.scope.daily) {
		return safeModeReasonDaily
	}
	if b.spend.Monthly.GreaterThanOrEqual(b.scope.monthly) {
		return safeModeReasonMonthly
	}
	return ""
}

// remaining is the headroom left in the tighter of the two periods
func (b budgetState) remaining() decimal.Decimal {
	return decimal.Min(
		b.scope.daily.Sub(b.spend.Daily),
		b.scope.monthly.Sub(b.spend.Monthly),
	)
}

// fits reports whether paying out value keeps the scope within budget
func (b budgetState) fits(value decimal.Decimal) bool {
	return value.LessThanOrEqual(b.remaining())
}
