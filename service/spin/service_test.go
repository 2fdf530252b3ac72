package spin

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/citydeals/spinwheel/config"
	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptRand struct {
	values []int64
}

func (s *scriptRand) Int63n(n int64) int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		CooldownSeconds:      5,
		FraudWindowMinutes:   60,
		DeviceUserThreshold:  3,
		IPUserThreshold:      5,
		MaxRedrawAttempts:    5,
		AlertIntervalMinutes: 5,
		ConfigCacheSeconds:   1,
		Timezone:             "UTC",

		DefaultTierName:      "standard",
		DefaultMaxDailySpins: 1,
		DefaultTierColor:     "#9e9e9e",
	}
}

type serviceTest struct {
	provider *repository.ProviderMock
	prize    *repository.PrizeMock
	campaign *repository.CampaignMock
	event    *repository.SuperEventMock
	limit    *repository.LimitMock
	tier     *repository.TierMock
	ledger   *repository.LedgerMock
	ops      *repository.OpsEventMock

	now     time.Time
	service *Service
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func cashPrize(id int64, key string, value string, weight int64) model.Prize {
	return model.Prize{
		ID:     id,
		Key:    key,
		Label:  key,
		Kind:   model.PrizeKindCash,
		Value:  mustDecimal(value),
		Weight: weight,
		Active: true,
	}
}

func newServiceTest() *serviceTest {
	s := &serviceTest{
		provider: &repository.ProviderMock{},
		prize:    &repository.PrizeMock{},
		campaign: &repository.CampaignMock{},
		event:    &repository.SuperEventMock{},
		limit:    &repository.LimitMock{},
		tier:     &repository.TierMock{},
		ledger:   &repository.LedgerMock{},
		ops:      &repository.OpsEventMock{},

		now: time.Date(2022, time.Month(5), 18, 10, 30, 0, 0, time.UTC),
	}

	s.provider.ReadonlyFunc = func(ctx context.Context) context.Context {
		return ctx
	}
	s.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}

	s.tier.GetUserTierFunc = func(ctx context.Context, userID string) (model.UserTier, bool, error) {
		return model.UserTier{}, false, nil
	}
	s.event.GetActiveSuperEventFunc = func(ctx context.Context, now time.Time) (model.NullSuperEvent, error) {
		return model.NullSuperEvent{}, nil
	}
	s.ledger.GetLastSpinRecordFunc = func(ctx context.Context, userID string) (model.NullSpinRecord, error) {
		return model.NullSpinRecord{}, nil
	}
	s.ledger.CountUsersByDeviceHashFunc = func(ctx context.Context, hash uint32, since time.Time) (int64, error) {
		return 0, nil
	}
	s.ledger.CountUsersByIPHashFunc = func(ctx context.Context, hash uint32, since time.Time) (int64, error) {
		return 0, nil
	}
	s.ledger.CountUserSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 0, nil
	}
	s.ledger.CountUserExtraSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 0, nil
	}
	s.ledger.SumCashSpendFunc = func(
		ctx context.Context, merchantCode sql.NullString, dayStart, monthStart time.Time,
	) (model.SpendTotals, error) {
		return model.SpendTotals{Daily: decimal.Zero, Monthly: decimal.Zero}, nil
	}
	s.ledger.InsertSpinRecordFunc = func(ctx context.Context, record model.SpinRecord) (int64, error) {
		return 11, nil
	}

	s.ops.InsertOpsEventFunc = func(ctx context.Context, event model.OpsEvent) error {
		return nil
	}

	s.limit.LockGlobalLimitFunc = func(ctx context.Context) (model.GlobalLimit, error) {
		return model.GlobalLimit{
			ID:           1,
			DailyLimit:   mustDecimal("1000"),
			MonthlyLimit: mustDecimal("10000"),
		}, nil
	}

	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			cashPrize(1, "cash-10", "10", 5),
		}, nil
	}
	s.prize.GetSafePrizeFunc = func(ctx context.Context) (model.Prize, error) {
		return model.Prize{
			ID:           9,
			Key:          "better-luck",
			Label:        "Better luck next time",
			Kind:         model.PrizeKindCash,
			Value:        decimal.Zero,
			Weight:       1,
			Active:       true,
			SafeFallback: true,
		}, nil
	}
	s.campaign.GetActiveCampaignsFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}

	s.service = NewService(
		s.provider,
		s.prize, s.campaign, s.event,
		s.limit, s.tier, s.ledger, s.ops,
		testEngineConfig(),
	)
	s.service.now = func() time.Time { return s.now }
	s.service.rand = &scriptRand{}

	return s
}

func newRequest() Request {
	return Request{
		UserID:       "user01",
		DeviceID:     "device-abc",
		IPAddress:    "203.0.113.7",
		MerchantCode: "",
	}
}

func TestService_Allocate_Normal(t *testing.T) {
	s := newServiceTest()

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)

	assert.Equal(t, "cash-10", result.PrizeKey)
	assert.Equal(t, model.PrizeKindCash, result.PrizeKind)
	assert.True(t, result.PrizeValue.Equal(mustDecimal("10")))
	assert.False(t, result.IsSuperSpin)

	inserts := s.ledger.InsertSpinRecordCalls()
	require.Len(t, inserts, 1)

	record := inserts[0].Record
	assert.Equal(t, "user01", record.UserID)
	assert.Equal(t, "cash-10", record.PrizeKey)
	assert.Equal(t, model.PrizeKindCash, record.PrizeKind)
	assert.Equal(t, model.SpinStatusCompleted, record.Status)
	assert.True(t, record.DeviceHash.Valid)
	assert.True(t, record.IPHash.Valid)
	assert.False(t, record.IsSuperSpin)
	assert.Equal(t, s.now, record.CreatedAt)

	assert.Len(t, s.limit.LockGlobalLimitCalls(), 1)
	assert.Len(t, s.limit.LockMerchantLimitCalls(), 0)
}

func TestService_Allocate_Cooldown(t *testing.T) {
	s := newServiceTest()
	s.ledger.GetLastSpinRecordFunc = func(ctx context.Context, userID string) (model.NullSpinRecord, error) {
		return model.NullSpinRecord{
			Valid: true,
			Record: model.SpinRecord{
				UserID:    userID,
				PrizeKind: model.PrizeKindCash,
				CreatedAt: s.now.Add(-2 * time.Second),
			},
		}, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.Equal(t, ErrCooldownActive, err)
	assert.Len(t, s.provider.TransactCalls(), 0)
}

func TestService_Allocate_CooldownElapsed(t *testing.T) {
	s := newServiceTest()
	s.ledger.GetLastSpinRecordFunc = func(ctx context.Context, userID string) (model.NullSpinRecord, error) {
		return model.NullSpinRecord{
			Valid: true,
			Record: model.SpinRecord{
				UserID:    userID,
				PrizeKind: model.PrizeKindCash,
				CreatedAt: s.now.Add(-6 * time.Second),
			},
		}, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.NoError(t, err)
}

func TestService_Allocate_DeviceFraud(t *testing.T) {
	s := newServiceTest()
	s.ledger.CountUsersByDeviceHashFunc = func(ctx context.Context, hash uint32, since time.Time) (int64, error) {
		return 3, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.Equal(t, ErrSuspiciousActivity, err)
	assert.Len(t, s.provider.TransactCalls(), 0)
}

func TestService_Allocate_IPFraud(t *testing.T) {
	s := newServiceTest()
	s.ledger.CountUsersByIPHashFunc = func(ctx context.Context, hash uint32, since time.Time) (int64, error) {
		return 5, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.Equal(t, ErrSuspiciousActivity, err)
}

func TestService_Allocate_FraudBelowThreshold(t *testing.T) {
	s := newServiceTest()
	s.ledger.CountUsersByDeviceHashFunc = func(ctx context.Context, hash uint32, since time.Time) (int64, error) {
		return 2, nil
	}
	s.ledger.CountUsersByIPHashFunc = func(ctx context.Context, hash uint32, since time.Time) (int64, error) {
		return 4, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.NoError(t, err)
}

func TestService_Allocate_QuotaExhausted(t *testing.T) {
	s := newServiceTest()
	s.ledger.CountUserSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 1, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())

	var quotaErr *QuotaError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, int64(1), quotaErr.SpinsMade)
	assert.Equal(t, int64(1), quotaErr.MaxDailySpins)
	assert.Len(t, s.ledger.InsertSpinRecordCalls(), 0)
}

func TestService_Allocate_TierRaisesQuota(t *testing.T) {
	s := newServiceTest()
	s.tier.GetUserTierFunc = func(ctx context.Context, userID string) (model.UserTier, bool, error) {
		return model.UserTier{
			UserID:        userID,
			TierName:      "gold",
			MaxDailySpins: 3,
			Color:         "#ffd700",
		}, true, nil
	}
	s.ledger.CountUserSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 2, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.NoError(t, err)
}

func TestService_Allocate_SafeMode_ManualOverride(t *testing.T) {
	s := newServiceTest()
	s.limit.LockGlobalLimitFunc = func(ctx context.Context) (model.GlobalLimit, error) {
		return model.GlobalLimit{
			ID:             1,
			DailyLimit:     mustDecimal("1000"),
			MonthlyLimit:   mustDecimal("10000"),
			ManualOverride: true,
		}, nil
	}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)

	assert.Equal(t, "better-luck", result.PrizeKey)
	assert.True(t, result.PrizeValue.Equal(decimal.Zero))

	// safe mode never touches the normal pool
	assert.Len(t, s.prize.GetActivePrizesCalls(), 0)

	events := s.ops.InsertOpsEventCalls()
	require.Len(t, events, 1)
	assert.Equal(t, model.OpsEventKindSafeMode, events[0].Event.Kind)
	assert.Equal(t, "global", events[0].Event.Scope)
	assert.Equal(t, "safe mode triggered by manual_override", events[0].Event.Message)
}

func TestService_Allocate_SafeMode_DailyLimit(t *testing.T) {
	s := newServiceTest()
	s.ledger.SumCashSpendFunc = func(
		ctx context.Context, merchantCode sql.NullString, dayStart, monthStart time.Time,
	) (model.SpendTotals, error) {
		return model.SpendTotals{
			Daily:   mustDecimal("1000"),
			Monthly: mustDecimal("1000"),
		}, nil
	}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "better-luck", result.PrizeKey)
}

func TestService_Allocate_SafeMode_AlertRateLimited(t *testing.T) {
	s := newServiceTest()
	s.limit.LockGlobalLimitFunc = func(ctx context.Context) (model.GlobalLimit, error) {
		return model.GlobalLimit{
			ID:             1,
			DailyLimit:     mustDecimal("1000"),
			MonthlyLimit:   mustDecimal("10000"),
			ManualOverride: true,
		}, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)

	s.now = s.now.Add(10 * time.Second)
	_, err = s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)

	// second activation inside the alert interval writes no new ops event
	assert.Len(t, s.ops.InsertOpsEventCalls(), 1)
}

func TestService_Allocate_BudgetHeadroomExcludesLargePrizes(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			cashPrize(1, "cash-40", "40", 5),
			cashPrize(2, "cash-10", "10", 5),
		}, nil
	}
	s.ledger.SumCashSpendFunc = func(
		ctx context.Context, merchantCode sql.NullString, dayStart, monthStart time.Time,
	) (model.SpendTotals, error) {
		return model.SpendTotals{
			Daily:   mustDecimal("980"),
			Monthly: mustDecimal("980"),
		}, nil
	}
	// only cash-10 survives the headroom filter, any draw value picks it
	s.service.rand = &scriptRand{values: []int64{4}}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "cash-10", result.PrizeKey)
}

func TestService_Allocate_AllPrizesFiltered_SafeFallback(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			cashPrize(1, "cash-40", "40", 5),
		}, nil
	}
	s.ledger.SumCashSpendFunc = func(
		ctx context.Context, merchantCode sql.NullString, dayStart, monthStart time.Time,
	) (model.SpendTotals, error) {
		return model.SpendTotals{
			Daily:   mustDecimal("980"),
			Monthly: mustDecimal("980"),
		}, nil
	}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "better-luck", result.PrizeKey)
}

func TestService_Allocate_NoPrizesConfigured(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return nil, nil
	}

	_, err := s.service.Allocate(context.Background(), newRequest())
	assert.Equal(t, ErrNoPrizesConfigured, err)
}

func TestService_Allocate_MerchantScope(t *testing.T) {
	s := newServiceTest()
	s.limit.LockMerchantLimitFunc = func(
		ctx context.Context, merchantCode string,
	) (model.NullMerchantLimit, error) {
		return model.NullMerchantLimit{
			Valid: true,
			Limit: model.MerchantLimit{
				MerchantCode: merchantCode,
				DailyLimit:   mustDecimal("50"),
				MonthlyLimit: mustDecimal("500"),
				Active:       true,
			},
		}, nil
	}

	req := newRequest()
	req.MerchantCode = "coffee-shop"

	_, err := s.service.Allocate(context.Background(), req)
	require.NoError(t, err)

	// global lock is always taken first, merchant limit replaces its caps
	assert.Len(t, s.limit.LockGlobalLimitCalls(), 1)
	require.Len(t, s.limit.LockMerchantLimitCalls(), 1)
	assert.Equal(t, "coffee-shop", s.limit.LockMerchantLimitCalls()[0].MerchantCode)

	sums := s.ledger.SumCashSpendCalls()
	require.Len(t, sums, 1)
	assert.Equal(t, sql.NullString{Valid: true, String: "coffee-shop"}, sums[0].MerchantCode)
}

func TestService_Allocate_MerchantScope_GlobalKillSwitch(t *testing.T) {
	s := newServiceTest()
	s.limit.LockGlobalLimitFunc = func(ctx context.Context) (model.GlobalLimit, error) {
		return model.GlobalLimit{
			ID:             1,
			DailyLimit:     mustDecimal("1000"),
			MonthlyLimit:   mustDecimal("10000"),
			ManualOverride: true,
		}, nil
	}
	s.limit.LockMerchantLimitFunc = func(
		ctx context.Context, merchantCode string,
	) (model.NullMerchantLimit, error) {
		return model.NullMerchantLimit{
			Valid: true,
			Limit: model.MerchantLimit{
				MerchantCode: merchantCode,
				DailyLimit:   mustDecimal("50"),
				MonthlyLimit: mustDecimal("500"),
				Active:       true,
			},
		}, nil
	}

	req := newRequest()
	req.MerchantCode = "coffee-shop"

	result, err := s.service.Allocate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "better-luck", result.PrizeKey)
}

func TestService_Allocate_ExtraSpin(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			{
				ID: 1, Key: "extra-spin", Label: "Extra Spin",
				Kind: model.PrizeKindExtraSpin, Value: decimal.Zero,
				Weight: 5, Active: true,
			},
		}, nil
	}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, model.PrizeKindExtraSpin, result.PrizeKind)

	record := s.ledger.InsertSpinRecordCalls()[0].Record
	assert.Equal(t, model.PrizeKindExtraSpin, record.PrizeKind)
}

func TestService_Allocate_ExtraSpin_DailyLimitRedraws(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			{
				ID: 1, Key: "extra-spin", Label: "Extra Spin",
				Kind: model.PrizeKindExtraSpin, Value: decimal.Zero,
				Weight: 5, Active: true,
			},
			cashPrize(2, "cash-10", "10", 5),
		}, nil
	}
	s.ledger.CountUserExtraSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 1, nil
	}
	// first draw lands on the extra spin, the redraw pool has only cash left
	s.service.rand = &scriptRand{values: []int64{0, 0}}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "cash-10", result.PrizeKey)
}

func TestService_Allocate_ExtraSpin_BackToBackRedraws(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			{
				ID: 1, Key: "extra-spin", Label: "Extra Spin",
				Kind: model.PrizeKindExtraSpin, Value: decimal.Zero,
				Weight: 5, Active: true,
			},
			cashPrize(2, "cash-10", "10", 5),
		}, nil
	}
	s.ledger.GetLastSpinRecordFunc = func(ctx context.Context, userID string) (model.NullSpinRecord, error) {
		return model.NullSpinRecord{
			Valid: true,
			Record: model.SpinRecord{
				UserID:    userID,
				PrizeKind: model.PrizeKindExtraSpin,
				CreatedAt: s.now.Add(-time.Hour),
			},
		}, nil
	}
	s.service.rand = &scriptRand{values: []int64{0, 0}}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "cash-10", result.PrizeKey)
}

func TestService_Allocate_ExtraSpin_OnlyExtraLeft_SafeFallback(t *testing.T) {
	s := newServiceTest()
	s.prize.GetActivePrizesFunc = func(ctx context.Context) ([]model.Prize, error) {
		return []model.Prize{
			{
				ID: 1, Key: "extra-spin", Label: "Extra Spin",
				Kind: model.PrizeKindExtraSpin, Value: decimal.Zero,
				Weight: 5, Active: true,
			},
		}, nil
	}
	s.ledger.CountUserExtraSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 1, nil
	}

	result, err := s.service.Allocate(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "better-luck", result.PrizeKey)
}

func TestService_DryRun(t *testing.T) {
	s := newServiceTest()
	s.ledger.CountUserSpinsFunc = func(ctx context.Context, userID string, since time.Time) (int64, error) {
		return 1, nil
	}

	result, err := s.service.DryRun(context.Background(), newRequest())
	require.NoError(t, err)

	assert.Equal(t, DryRunResult{
		SpinsMadeToday:  1,
		MaxDailySpins:   1,
		TierName:        "standard",
		TierColor:       "#9e9e9e",
		SuperSpinActive: false,
	}, result)

	// dry run never draws and never writes
	assert.Len(t, s.provider.TransactCalls(), 0)
	assert.Len(t, s.ledger.InsertSpinRecordCalls(), 0)
}

func TestService_DryRun_AssignedTier(t *testing.T) {
	s := newServiceTest()
	s.tier.GetUserTierFunc = func(ctx context.Context, userID string) (model.UserTier, bool, error) {
		return model.UserTier{
			UserID:        userID,
			TierName:      "platinum",
			MaxDailySpins: 5,
			Color:         "#e5e4e2",
		}, true, nil
	}

	result, err := s.service.DryRun(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "platinum", result.TierName)
	assert.Equal(t, int64(5), result.MaxDailySpins)
}
