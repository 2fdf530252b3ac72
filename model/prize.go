package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Prize ...
type Prize struct {
	ID    int64  `db:"id"`
	Key   string `db:"prize_key"`
	Label string `db:"label"`

	Kind   PrizeKind       `db:"kind"`
	Value  decimal.Decimal `db:"value"`
	Weight int64           `db:"weight"`

	Active       bool `db:"active"`
	SafeFallback bool `db:"safe_fallback"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PrizeKind ...
type PrizeKind int

const (
	// PrizeKindCash ...
	PrizeKindCash PrizeKind = 1

	// PrizeKindCooldown ...
	PrizeKindCooldown PrizeKind = 2

	// PrizeKindExtraSpin grants another draw instead of a payout
	PrizeKindExtraSpin PrizeKind = 3
)

// String returns the wire representation used by the HTTP API
func (k PrizeKind) String() string {
	switch k {
	case PrizeKindCash:
		return "cash"
	case PrizeKindCooldown:
		return "cooldown"
	case PrizeKindExtraSpin:
		return "extra_spin"
	default:
		return "unknown"
	}
}
