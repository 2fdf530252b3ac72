package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/citydeals/spinwheel/model"
	"github.com/shopspring/decimal"
	"time"
)

// SuperEvent ...
type SuperEvent interface {
	GetActiveSuperEvent(ctx context.Context, now time.Time) (model.NullSuperEvent, error)
	GetSuperPrizes(ctx context.Context, eventID int64) ([]model.SuperPrize, error)
	LockSuperEvent(ctx context.Context, eventID int64) (model.SuperEvent, error)
	AddBudgetUsed(ctx context.Context, eventID int64, amount decimal.Decimal) (bool, error)
}

type superEventImpl struct {
}

// NewSuperEvent ...
func NewSuperEvent() SuperEvent {
	return &superEventImpl{}
}

// GetActiveSuperEvent ...
func (s *superEventImpl) GetActiveSuperEvent(
	ctx context.Context, now time.Time,
) (model.NullSuperEvent, error) {
	query := `
SELECT id, name, status, start_time, end_time, budget_total, budget_used
FROM super_event
WHERE status = ? AND start_time <= ? AND ? < end_time
LIMIT 1
`
	var event model.SuperEvent
	err := GetReader(ctx).GetContext(ctx, &event, query,
		model.SuperEventStatusActive, now, now)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullSuperEvent{}, nil
	}
	if err != nil {
		return model.NullSuperEvent{}, err
	}
	return model.NullSuperEvent{Valid: true, Event: event}, nil
}

// GetSuperPrizes ...
func (s *superEventImpl) GetSuperPrizes(
	ctx context.Context, eventID int64,
) ([]model.SuperPrize, error) {
	query := `
SELECT id, event_id, value, weight, active
FROM super_prize
WHERE active = TRUE AND event_id = ?
`
	var result []model.SuperPrize
	err := GetReader(ctx).SelectContext(ctx, &result, query, eventID)
	return result, err
}

// LockSuperEvent ...
func (s *superEventImpl) LockSuperEvent(
	ctx context.Context, eventID int64,
) (model.SuperEvent, error) {
	query := `
SELECT id, name, status, start_time, end_time, budget_total, budget_used
FROM super_event
WHERE id = ?
FOR UPDATE
`
	var event model.SuperEvent
	err := GetTx(ctx).GetContext(ctx, &event, query, eventID)
	return event, err
}

// AddBudgetUsed increments budget_used only when the result stays within
// budget_total. Returns false when the increment would overspend.
func (s *superEventImpl) AddBudgetUsed(
	ctx context.Context, eventID int64, amount decimal.Decimal,
) (bool, error) {
	query := `
UPDATE super_event
SET budget_used = budget_used + ?
WHERE id = ? AND budget_used + ? <= budget_total
`
	result, err := GetTx(ctx).ExecContext(ctx, query, amount, eventID, amount)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
