package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/citydeals/spinwheel/model"
	"time"
)

// Ledger owns the spin_record write path. Every quota and spend figure is
// derived from this table, there is no separately maintained counter.
type Ledger interface {
	InsertSpinRecord(ctx context.Context, record model.SpinRecord) (int64, error)
	GetLastSpinRecord(ctx context.Context, userID string) (model.NullSpinRecord, error)

	CountUsersByDeviceHash(ctx context.Context, hash uint32, since time.Time) (int64, error)
	CountUsersByIPHash(ctx context.Context, hash uint32, since time.Time) (int64, error)

	CountUserSpins(ctx context.Context, userID string, since time.Time) (int64, error)
	CountUserExtraSpins(ctx context.Context, userID string, since time.Time) (int64, error)

	SumCashSpend(ctx context.Context, merchantCode sql.NullString, dayStart, monthStart time.Time) (model.SpendTotals, error)
	SumCampaignSpend(ctx context.Context, campaignID int64, dayStart, monthStart time.Time) (model.SpendTotals, error)

	HasSuperSpin(ctx context.Context, userID string, eventID int64) (bool, error)
}

type ledgerImpl struct {
}

// NewLedger ...
func NewLedger() Ledger {
	return &ledgerImpl{}
}

// InsertSpinRecord ...
func (l *ledgerImpl) InsertSpinRecord(
	ctx context.Context, record model.SpinRecord,
) (int64, error) {
	query := `
INSERT INTO spin_record (
	user_id, merchant_code,
	prize_key, prize_label, prize_kind, prize_value,
	status, device_id, device_hash, ip_address, ip_hash,
	campaign_id, super_event_id, is_super_spin, created_at
) VALUES (
	:user_id, :merchant_code,
	:prize_key, :prize_label, :prize_kind, :prize_value,
	:status, :device_id, :device_hash, :ip_address, :ip_hash,
	:campaign_id, :super_event_id, :is_super_spin, :created_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, record)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLastSpinRecord ...
func (l *ledgerImpl) GetLastSpinRecord(
	ctx context.Context, userID string,
) (model.NullSpinRecord, error) {
	query := `
SELECT id, user_id, merchant_code,
	prize_key, prize_label, prize_kind, prize_value,
	status, device_id, device_hash, ip_address, ip_hash,
	campaign_id, super_event_id, is_super_spin, created_at
FROM spin_record
WHERE user_id = ?
ORDER BY id DESC
LIMIT 1
`
	var record model.SpinRecord
	err := GetReader(ctx).GetContext(ctx, &record, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullSpinRecord{}, nil
	}
	if err != nil {
		return model.NullSpinRecord{}, err
	}
	return model.NullSpinRecord{Valid: true, Record: record}, nil
}

// CountUsersByDeviceHash ...
func (l *ledgerImpl) CountUsersByDeviceHash(
	ctx context.Context, hash uint32, since time.Time,
) (int64, error) {
	query := `
SELECT COUNT(DISTINCT user_id) FROM spin_record
WHERE device_hash = ? AND created_at >= ?
`
	var count int64
	err := GetReader(ctx).GetContext(ctx, &count, query, int64(hash), since)
	return count, err
}

// CountUsersByIPHash ...
func (l *ledgerImpl) CountUsersByIPHash(
	ctx context.Context, hash uint32, since time.Time,
) (int64, error) {
	query := `
SELECT COUNT(DISTINCT user_id) FROM spin_record
WHERE ip_hash = ? AND created_at >= ?
`
	var count int64
	err := GetReader(ctx).GetContext(ctx, &count, query, int64(hash), since)
	return count, err
}

// CountUserSpins counts the spins bounded by the daily quota. Rerolls and
// super spins are additive and do not count.
func (l *ledgerImpl) CountUserSpins(
	ctx context.Context, userID string, since time.Time,
) (int64, error) {
	query := `
SELECT COUNT(*) FROM spin_record
WHERE user_id = ? AND prize_kind <> ? AND is_super_spin = FALSE AND created_at >= ?
`
	var count int64
	err := GetReader(ctx).GetContext(ctx, &count, query,
		userID, model.PrizeKindExtraSpin, since)
	return count, err
}

// CountUserExtraSpins ...
func (l *ledgerImpl) CountUserExtraSpins(
	ctx context.Context, userID string, since time.Time,
) (int64, error) {
	query := `
SELECT COUNT(*) FROM spin_record
WHERE user_id = ? AND prize_kind = ? AND created_at >= ?
`
	var count int64
	err := GetReader(ctx).GetContext(ctx, &count, query,
		userID, model.PrizeKindExtraSpin, since)
	return count, err
}

// SumCashSpend ...
func (l *ledgerImpl) SumCashSpend(
	ctx context.Context, merchantCode sql.NullString, dayStart, monthStart time.Time,
) (model.SpendTotals, error) {
	query := `
SELECT
	COALESCE(SUM(CASE WHEN created_at >= ? THEN prize_value ELSE 0 END), 0) AS daily,
	COALESCE(SUM(prize_value), 0) AS monthly
FROM spin_record
WHERE prize_kind = ? AND is_super_spin = FALSE AND created_at >= ?
`
	args := []interface{}{dayStart, model.PrizeKindCash, monthStart}
	if merchantCode.Valid {
		query += " AND merchant_code = ?"
		args = append(args, merchantCode.String)
	}

	var totals model.SpendTotals
	err := GetReader(ctx).GetContext(ctx, &totals, query, args...)
	return totals, err
}

// SumCampaignSpend ...
func (l *ledgerImpl) SumCampaignSpend(
	ctx context.Context, campaignID int64, dayStart, monthStart time.Time,
) (model.SpendTotals, error) {
	query := `
SELECT
	COALESCE(SUM(CASE WHEN created_at >= ? THEN prize_value ELSE 0 END), 0) AS daily,
	COALESCE(SUM(prize_value), 0) AS monthly
FROM spin_record
WHERE prize_kind = ? AND campaign_id = ? AND created_at >= ?
`
	var totals model.SpendTotals
	err := GetReader(ctx).GetContext(ctx, &totals, query,
		dayStart, model.PrizeKindCash, campaignID, monthStart)
	return totals, err
}

// HasSuperSpin ...
func (l *ledgerImpl) HasSuperSpin(
	ctx context.Context, userID string, eventID int64,
) (bool, error) {
	query := `
SELECT COUNT(*) FROM spin_record
WHERE user_id = ? AND super_event_id = ? AND is_super_spin = TRUE
`
	var count int64
	err := GetReader(ctx).GetContext(ctx, &count, query, userID, eventID)
	return count > 0, err
}
