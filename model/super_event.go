package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// SuperEvent ...
type SuperEvent struct {
	ID     int64            `db:"id"`
	Name   string           `db:"name"`
	Status SuperEventStatus `db:"status"`

	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`

	BudgetTotal decimal.Decimal `db:"budget_total"`
	BudgetUsed  decimal.Decimal `db:"budget_used"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SuperEventStatus ...
type SuperEventStatus int

const (
	// SuperEventStatusActive ...
	SuperEventStatusActive SuperEventStatus = 1

	// SuperEventStatusInactive ...
	SuperEventStatusInactive SuperEventStatus = 2
)

// NullSuperEvent ...
type NullSuperEvent struct {
	Valid bool
	Event SuperEvent
}

// SuperPrize ...
type SuperPrize struct {
	ID      int64           `db:"id"`
	EventID int64           `db:"event_id"`
	Value   decimal.Decimal `db:"value"`
	Weight  int64           `db:"weight"`
	Active  bool            `db:"active"`
}
