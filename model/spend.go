package model

import "github.com/shopspring/decimal"

// SpendTotals is an aggregate over ledger CASH payouts
type SpendTotals struct {
	Daily   decimal.Decimal `db:"daily"`
	Monthly decimal.Decimal `db:"monthly"`
}
