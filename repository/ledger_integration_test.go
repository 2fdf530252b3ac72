package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type ledgerTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Ledger
}

func newLedgerTest() *ledgerTest {
	tc := integration.NewTestCase()
	tc.Truncate("spin_record")
	return &ledgerTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewLedger(),
	}
}

func (l *ledgerTest) insert(t *testing.T, record model.SpinRecord) int64 {
	var id int64
	err := l.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = l.repo.InsertSpinRecord(ctx, record)
		return err
	})
	require.NoError(t, err)
	return id
}

func cashRecord(userID string, value string, createdAt time.Time) model.SpinRecord {
	return model.SpinRecord{
		UserID:     userID,
		PrizeKey:   "cash-" + value,
		PrizeLabel: "cash-" + value,
		PrizeKind:  model.PrizeKindCash,
		PrizeValue: newDecimal(value),
		Status:     model.SpinStatusCompleted,
		CreatedAt:  createdAt,
	}
}

func TestLedger_InsertAndGetLast(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	last, err := l.repo.GetLastSpinRecord(ctx, "user01")
	assert.NoError(t, err)
	assert.False(t, last.Valid)

	record := cashRecord("user01", "10", newTime("2022-05-18T10:00:00Z"))
	record.MerchantCode = sql.NullString{Valid: true, String: "coffee-shop"}
	record.DeviceHash = model.NullHash{Valid: true, Hash: 3300}
	id := l.insert(t, record)
	assert.Greater(t, id, int64(0))

	l.insert(t, cashRecord("user01", "20", newTime("2022-05-18T11:00:00Z")))

	last, err = l.repo.GetLastSpinRecord(ctx, "user01")
	assert.NoError(t, err)
	require.True(t, last.Valid)
	assert.Equal(t, "user01", last.Record.UserID)
	assert.True(t, last.Record.PrizeValue.Equal(newDecimal("20")))
	assert.Equal(t, newTime("2022-05-18T11:00:00Z"), last.Record.CreatedAt.UTC())
}

func TestLedger_CountUserSpins_ExcludesExtraAndSuperSpins(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	dayStart := newTime("2022-05-18T00:00:00Z")

	l.insert(t, cashRecord("user01", "10", newTime("2022-05-18T10:00:00Z")))
	l.insert(t, cashRecord("user01", "10", newTime("2022-05-17T10:00:00Z"))) // yesterday

	extra := cashRecord("user01", "0", newTime("2022-05-18T10:30:00Z"))
	extra.PrizeKind = model.PrizeKindExtraSpin
	l.insert(t, extra)

	superSpin := cashRecord("user01", "88", newTime("2022-05-18T11:00:00Z"))
	superSpin.SuperEventID = sql.NullInt64{Valid: true, Int64: 7}
	superSpin.IsSuperSpin = true
	l.insert(t, superSpin)

	count, err := l.repo.CountUserSpins(ctx, "user01", dayStart)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	extraCount, err := l.repo.CountUserExtraSpins(ctx, "user01", dayStart)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), extraCount)
}

func TestLedger_CountUsersByHashes(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	since := newTime("2022-05-18T09:00:00Z")

	for i, userID := range []string{"user01", "user02", "user01"} {
		record := cashRecord(userID, "10",
			newTime("2022-05-18T10:00:00Z").Add(time.Duration(i)*time.Minute))
		record.DeviceHash = model.NullHash{Valid: true, Hash: 3300}
		record.IPHash = model.NullHash{Valid: true, Hash: 4400}
		l.insert(t, record)
	}

	old := cashRecord("user03", "10", newTime("2022-05-18T08:00:00Z"))
	old.DeviceHash = model.NullHash{Valid: true, Hash: 3300}
	l.insert(t, old)

	count, err := l.repo.CountUsersByDeviceHash(ctx, 3300, since)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = l.repo.CountUsersByIPHash(ctx, 4400, since)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = l.repo.CountUsersByDeviceHash(ctx, 9999, since)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLedger_SumCashSpend(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	dayStart := newTime("2022-05-18T00:00:00Z")
	monthStart := newTime("2022-05-01T00:00:00Z")

	l.insert(t, cashRecord("user01", "10", newTime("2022-05-18T10:00:00Z")))
	l.insert(t, cashRecord("user02", "20", newTime("2022-05-17T10:00:00Z")))
	l.insert(t, cashRecord("user03", "40", newTime("2022-04-30T10:00:00Z"))) // last month

	extra := cashRecord("user04", "0", newTime("2022-05-18T10:00:00Z"))
	extra.PrizeKind = model.PrizeKindExtraSpin
	l.insert(t, extra)

	// super spins spend the event budget, not the scope budget
	superSpin := cashRecord("user05", "100", newTime("2022-05-18T10:00:00Z"))
	superSpin.SuperEventID = sql.NullInt64{Valid: true, Int64: 7}
	superSpin.IsSuperSpin = true
	l.insert(t, superSpin)

	totals, err := l.repo.SumCashSpend(ctx, sql.NullString{}, dayStart, monthStart)
	assert.NoError(t, err)
	assert.True(t, totals.Daily.Equal(newDecimal("10")))
	assert.True(t, totals.Monthly.Equal(newDecimal("30")))
}

func TestLedger_SumCashSpend_MerchantScope(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	dayStart := newTime("2022-05-18T00:00:00Z")
	monthStart := newTime("2022-05-01T00:00:00Z")

	merchant := cashRecord("user01", "10", newTime("2022-05-18T10:00:00Z"))
	merchant.MerchantCode = sql.NullString{Valid: true, String: "coffee-shop"}
	l.insert(t, merchant)

	l.insert(t, cashRecord("user02", "20", newTime("2022-05-18T10:00:00Z")))

	totals, err := l.repo.SumCashSpend(ctx,
		sql.NullString{Valid: true, String: "coffee-shop"}, dayStart, monthStart)
	assert.NoError(t, err)
	assert.True(t, totals.Daily.Equal(newDecimal("10")))
	assert.True(t, totals.Monthly.Equal(newDecimal("10")))
}

func TestLedger_SumCampaignSpend(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	dayStart := newTime("2022-05-18T00:00:00Z")
	monthStart := newTime("2022-05-01T00:00:00Z")

	record := cashRecord("user01", "15", newTime("2022-05-18T10:00:00Z"))
	record.CampaignID = sql.NullInt64{Valid: true, Int64: 3}
	l.insert(t, record)

	l.insert(t, cashRecord("user02", "20", newTime("2022-05-18T10:00:00Z")))

	totals, err := l.repo.SumCampaignSpend(ctx, 3, dayStart, monthStart)
	assert.NoError(t, err)
	assert.True(t, totals.Daily.Equal(newDecimal("15")))
	assert.True(t, totals.Monthly.Equal(newDecimal("15")))
}

func TestLedger_HasSuperSpin(t *testing.T) {
	l := newLedgerTest()
	ctx := l.provider.Readonly(newContext())

	granted, err := l.repo.HasSuperSpin(ctx, "user01", 7)
	assert.NoError(t, err)
	assert.False(t, granted)

	record := cashRecord("user01", "100", newTime("2022-05-18T10:00:00Z"))
	record.SuperEventID = sql.NullInt64{Valid: true, Int64: 7}
	record.IsSuperSpin = true
	l.insert(t, record)

	granted, err = l.repo.HasSuperSpin(ctx, "user01", 7)
	assert.NoError(t, err)
	assert.True(t, granted)

	granted, err = l.repo.HasSuperSpin(ctx, "user01", 8)
	assert.NoError(t, err)
	assert.False(t, granted)
}

func TestSuperEvent_AddBudgetUsed(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("super_event")

	tc.DB.MustExec(`
INSERT INTO super_event (id, name, status, start_time, end_time, budget_total, budget_used)
VALUES (7, 'Mega Day', 1, '2022-05-18 00:00:00', '2022-05-19 00:00:00', 100, 0)
`)

	provider := NewProvider(tc.DB)
	repo := NewSuperEvent()

	err := provider.Transact(newContext(), func(ctx context.Context) error {
		ok, err := repo.AddBudgetUsed(ctx, 7, newDecimal("60"))
		assert.NoError(t, err)
		assert.True(t, ok)

		// the second increment would exceed budget_total
		ok, err = repo.AddBudgetUsed(ctx, 7, newDecimal("50"))
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.AddBudgetUsed(ctx, 7, newDecimal("40"))
		assert.NoError(t, err)
		assert.True(t, ok)

		return nil
	})
	assert.NoError(t, err)

	err = provider.Transact(newContext(), func(ctx context.Context) error {
		event, err := repo.LockSuperEvent(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, event.BudgetUsed.Equal(newDecimal("100")))
		return nil
	})
	assert.NoError(t, err)
}
