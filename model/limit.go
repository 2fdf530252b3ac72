package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// GlobalLimit is a singleton row (id = 1)
type GlobalLimit struct {
	ID           int64           `db:"id"`
	DailyLimit   decimal.Decimal `db:"daily_limit"`
	MonthlyLimit decimal.Decimal `db:"monthly_limit"`

	// ManualOverride forces safe mode regardless of spend
	ManualOverride bool `db:"manual_override"`

	UpdatedAt time.Time `db:"updated_at"`
}

// MerchantLimit replaces the global limit for that merchant's requests
type MerchantLimit struct {
	MerchantCode string          `db:"merchant_code"`
	DailyLimit   decimal.Decimal `db:"daily_limit"`
	MonthlyLimit decimal.Decimal `db:"monthly_limit"`
	Active       bool            `db:"active"`
}

// NullMerchantLimit ...
type NullMerchantLimit struct {
	Valid bool
	Limit MerchantLimit
}
