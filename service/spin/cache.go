package spin

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/repository"
	"github.com/coocood/freecache"
)

const configCacheSize = 2 * 1024 * 1024

// configCache is an in-process snapshot cache for configuration reads.
// Configuration staleness of a few seconds is acceptable, budget and ledger
// reads never go through here.
type configCache struct {
	cache *freecache.Cache
	ttl   int

	prizeRepo    repository.Prize
	campaignRepo repository.Campaign
	eventRepo    repository.SuperEvent
	tierRepo     repository.Tier
}

func newConfigCache(
	ttlSeconds int,
	prizeRepo repository.Prize,
	campaignRepo repository.Campaign,
	eventRepo repository.SuperEvent,
	tierRepo repository.Tier,
) *configCache {
	return &configCache{
		cache: freecache.NewCache(configCacheSize),
		ttl:   ttlSeconds,

		prizeRepo:    prizeRepo,
		campaignRepo: campaignRepo,
		eventRepo:    eventRepo,
		tierRepo:     tierRepo,
	}
}

func (c *configCache) get(key string, dest interface{}) bool {
	data, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *configCache) set(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.cache.Set([]byte(key), data, c.ttl)
}

// ActivePrizes ...
func (c *configCache) ActivePrizes(ctx context.Context) ([]model.Prize, error) {
	const key = "prizes:active"

	var result []model.Prize
	if c.get(key, &result) {
		return result, nil
	}

	result, err := c.prizeRepo.GetActivePrizes(ctx)
	if err != nil {
		return nil, err
	}
	c.set(key, result)
	return result, nil
}

// SafePrize ...
func (c *configCache) SafePrize(ctx context.Context) (model.Prize, error) {
	const key = "prizes:safe"

	var result model.Prize
	if c.get(key, &result) {
		return result, nil
	}

	result, err := c.prizeRepo.GetSafePrize(ctx)
	if err != nil {
		return model.Prize{}, err
	}
	c.set(key, result)
	return result, nil
}

// ActiveCampaigns returns campaigns in id order, the window is re-checked
// against now since cached entries may outlive it
func (c *configCache) ActiveCampaigns(
	ctx context.Context, now time.Time,
) ([]model.Campaign, error) {
	const key = "campaigns:active"

	var campaigns []model.Campaign
	if !c.get(key, &campaigns) {
		var err error
		campaigns, err = c.campaignRepo.GetActiveCampaigns(ctx, now)
		if err != nil {
			return nil, err
		}
		c.set(key, campaigns)
	}

	var result []model.Campaign
	for _, campaign := range campaigns {
		if campaign.Status != model.CampaignStatusActive {
			continue
		}
		if now.Before(campaign.StartTime) || !now.Before(campaign.EndTime) {
			continue
		}
		result = append(result, campaign)
	}
	return result, nil
}

// CampaignPrizes ...
func (c *configCache) CampaignPrizes(
	ctx context.Context, campaignIDs []int64,
) ([]model.CampaignPrize, error) {
	parts := make([]string, 0, len(campaignIDs))
	for _, id := range campaignIDs {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	key := "campaigns:prizes:" + strings.Join(parts, ",")

	var result []model.CampaignPrize
	if c.get(key, &result) {
		return result, nil
	}

	result, err := c.campaignRepo.GetCampaignPrizes(ctx, campaignIDs)
	if err != nil {
		return nil, err
	}
	c.set(key, result)
	return result, nil
}

// ActiveSuperEvent ...
func (c *configCache) ActiveSuperEvent(
	ctx context.Context, now time.Time,
) (model.NullSuperEvent, error) {
	const key = "super:event"

	var cached model.NullSuperEvent
	if !c.get(key, &cached) {
		var err error
		cached, err = c.eventRepo.GetActiveSuperEvent(ctx, now)
		if err != nil {
			return model.NullSuperEvent{}, err
		}
		c.set(key, cached)
	}

	if cached.Valid {
		event := cached.Event
		if event.Status != model.SuperEventStatusActive ||
			now.Before(event.StartTime) || !now.Before(event.EndTime) {
			return model.NullSuperEvent{}, nil
		}
	}
	return cached, nil
}

// SuperPrizes ...
func (c *configCache) SuperPrizes(ctx context.Context, eventID int64) ([]model.SuperPrize, error) {
	key := fmt.Sprintf("super:prizes:%d", eventID)

	var result []model.SuperPrize
	if c.get(key, &result) {
		return result, nil
	}

	result, err := c.eventRepo.GetSuperPrizes(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.set(key, result)
	return result, nil
}

type cachedTier struct {
	Found bool
	Tier  model.UserTier
}

// UserTier ...
func (c *configCache) UserTier(
	ctx context.Context, userID string,
) (model.UserTier, bool, error) {
	key := "tier:" + userID

	var cached cachedTier
	if c.get(key, &cached) {
		return cached.Tier, cached.Found, nil
	}

	tier, found, err := c.tierRepo.GetUserTier(ctx, userID)
	if err != nil {
		return model.UserTier{}, false, err
	}
	c.set(key, cachedTier{Found: found, Tier: tier})
	return tier, found, nil
}
