package repository

import (
	"context"
	"github.com/citydeals/spinwheel/model"
	"github.com/jmoiron/sqlx"
	"time"
)

// Campaign ...
type Campaign interface {
	GetActiveCampaigns(ctx context.Context, now time.Time) ([]model.Campaign, error)
	GetCampaignPrizes(ctx context.Context, campaignIDs []int64) ([]model.CampaignPrize, error)
	LockCampaign(ctx context.Context, campaignID int64) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// GetActiveCampaigns ...
func (c *campaignImpl) GetActiveCampaigns(
	ctx context.Context, now time.Time,
) ([]model.Campaign, error) {
	query := `
SELECT id, name, status, start_time, end_time, daily_budget, monthly_budget
FROM campaign
WHERE status = ? AND start_time <= ? AND ? < end_time
ORDER BY id
`
	var result []model.Campaign
	err := GetReader(ctx).SelectContext(ctx, &result, query,
		model.CampaignStatusActive, now, now)
	return result, err
}

// GetCampaignPrizes ...
func (c *campaignImpl) GetCampaignPrizes(
	ctx context.Context, campaignIDs []int64,
) ([]model.CampaignPrize, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT id, campaign_id, value, weight, active
FROM campaign_prize
WHERE active = TRUE AND campaign_id IN (?)
`, campaignIDs)
	if err != nil {
		return nil, err
	}

	var result []model.CampaignPrize
	err = GetReader(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, campaignID int64) error {
	query := `SELECT id FROM campaign WHERE id = ? FOR UPDATE`
	var id int64
	return GetTx(ctx).GetContext(ctx, &id, query, campaignID)
}
