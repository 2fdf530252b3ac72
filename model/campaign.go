package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Campaign ...
type Campaign struct {
	ID     int64          `db:"id"`
	Name   string         `db:"name"`
	Status CampaignStatus `db:"status"`

	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`

	DailyBudget   decimal.Decimal `db:"daily_budget"`
	MonthlyBudget decimal.Decimal `db:"monthly_budget"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 1

	// CampaignStatusInactive ...
	CampaignStatusInactive CampaignStatus = 2
)

// CampaignPrize ...
type CampaignPrize struct {
	ID         int64           `db:"id"`
	CampaignID int64           `db:"campaign_id"`
	Value      decimal.Decimal `db:"value"`
	Weight     int64           `db:"weight"`
	Active     bool            `db:"active"`
}
