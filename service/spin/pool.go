package spin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/pkg/util"
	"github.com/shopspring/decimal"
)

// candidate is one weighted entry of the resolved pool
type candidate struct {
	prizeKey string
	label    string
	kind     model.PrizeKind
	value    decimal.Decimal
	weight   int64

	campaignID     sql.NullInt64
	superEventID   sql.NullInt64
	superEventName string
}

func candidateFromPrize(p model.Prize) candidate {
	return candidate{
		prizeKey: p.Key,
		label:    p.Label,
		kind:     p.Kind,
		value:    p.Value,
		weight:   p.Weight,
	}
}

// safeCandidate loads the designated minimum safe prize
func (s *Service) safeCandidate(ctx context.Context) (candidate, error) {
	prize, err := s.cache.SafePrize(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return candidate{}, ErrSafePrizeMissing
	}
	if err != nil {
		return candidate{}, err
	}
	return candidateFromPrize(prize), nil
}

// buildPool assembles the weighted candidate set for this request: active
// base prizes plus active campaign prizes, each cash candidate filtered
// against the scope budget headroom. Campaign budget exceedance on any
// active campaign excludes all campaign prizes for the request.
func (s *Service) buildPool(
	ctx context.Context, now time.Time, budget budgetState,
) ([]candidate, error) {
	prizes, err := s.cache.ActivePrizes(ctx)
	if err != nil {
		return nil, err
	}

	var pool []candidate
	cashIndex := map[string]int{} // prize value -> pool index, for campaign merge

	configured := 0
	for _, p := range prizes {
		if p.Weight <= 0 {
			continue
		}
		configured++
		if p.Kind == model.PrizeKindCash && !budget.fits(p.Value) {
			continue
		}
		if p.Kind == model.PrizeKindCash {
			cashIndex[p.Value.String()] = len(pool)
		}
		pool = append(pool, candidateFromPrize(p))
	}

	if configured == 0 {
		return nil, ErrNoPrizesConfigured
	}

	campaignPool, err := s.campaignCandidates(ctx, now, budget)
	if err != nil {
		return nil, err
	}
	for _, cand := range campaignPool {
		// duplicate values resolve to the most specific source
		if idx, ok := cashIndex[cand.value.String()]; ok {
			pool[idx] = cand
			continue
		}
		cashIndex[cand.value.String()] = len(pool)
		pool = append(pool, cand)
	}

	if len(pool) == 0 {
		// every candidate was filtered out by budget headroom, degrade to
		// the safe prize instead of failing
		safe, err := s.safeCandidate(ctx)
		if err != nil {
			return nil, err
		}
		pool = append(pool, safe)
	}

	return pool, nil
}

func (s *Service) campaignCandidates(
	ctx context.Context, now time.Time, budget budgetState,
) ([]candidate, error) {
	campaigns, err := s.cache.ActiveCampaigns(ctx, now)
	if err != nil || len(campaigns) == 0 {
		return nil, err
	}

	names := make(map[int64]string, len(campaigns))
	remaining := make(map[int64]decimal.Decimal, len(campaigns))
	ids := make([]int64, 0, len(campaigns))

	// campaigns arrive in id order, locks are acquired in the same order
	// on every request
	for _, c := range campaigns {
		if err := s.campaignRepo.LockCampaign(ctx, c.ID); err != nil {
			return nil, err
		}
		spend, err := s.ledgerRepo.SumCampaignSpend(ctx, c.ID, utcDayStart(now), utcMonthStart(now))
		if err != nil {
			return nil, err
		}
		if spend.Daily.GreaterThanOrEqual(c.DailyBudget) ||
			spend.Monthly.GreaterThanOrEqual(c.MonthlyBudget) {
			// one exhausted campaign excludes every campaign prize
			return nil, nil
		}
		names[c.ID] = c.Name
		remaining[c.ID] = decimal.Min(
			c.DailyBudget.Sub(spend.Daily),
			c.MonthlyBudget.Sub(spend.Monthly),
		)
		ids = append(ids, c.ID)
	}

	prizes, err := s.cache.CampaignPrizes(ctx, ids)
	if err != nil {
		return nil, err
	}

	var result []candidate
	for _, cp := range prizes {
		if cp.Weight <= 0 {
			continue
		}
		if !budget.fits(cp.Value) {
			continue
		}
		if cp.Value.GreaterThan(remaining[cp.CampaignID]) {
			continue
		}
		result = append(result, candidate{
			prizeKey:   "campaign:" + names[cp.CampaignID],
			label:      names[cp.CampaignID],
			kind:       model.PrizeKindCash,
			value:      cp.Value,
			weight:     cp.Weight,
			campaignID: sql.NullInt64{Valid: true, Int64: cp.CampaignID},
		})
	}
	return result, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: s}
}

func nullHashOf(s string) model.NullHash {
	if s == "" {
		return model.NullHash{}
	}
	return model.NullHash{Valid: true, Hash: util.HashFunc(s)}
}
