package model

import (
	"database/sql"
	"database/sql/driver"
	"github.com/shopspring/decimal"
	"time"
)

// SpinRecord is the ledger entry, immutable once written
type SpinRecord struct {
	ID     int64  `db:"id"`
	UserID string `db:"user_id"`

	MerchantCode sql.NullString `db:"merchant_code"`

	PrizeKey   string          `db:"prize_key"`
	PrizeLabel string          `db:"prize_label"`
	PrizeKind  PrizeKind       `db:"prize_kind"`
	PrizeValue decimal.Decimal `db:"prize_value"`

	Status SpinStatus `db:"status"`

	DeviceID   sql.NullString `db:"device_id"`
	DeviceHash NullHash       `db:"device_hash"`
	IPAddress  sql.NullString `db:"ip_address"`
	IPHash     NullHash       `db:"ip_hash"`

	CampaignID   sql.NullInt64 `db:"campaign_id"`
	SuperEventID sql.NullInt64 `db:"super_event_id"`
	IsSuperSpin  bool          `db:"is_super_spin"`

	CreatedAt time.Time `db:"created_at"`
}

// SpinStatus ...
type SpinStatus int

const (
	// SpinStatusCompleted ...
	SpinStatusCompleted SpinStatus = 1
)

// NullSpinRecord ...
type NullSpinRecord struct {
	Valid  bool
	Record SpinRecord
}

// NullHash is a nullable murmur3 hash column
type NullHash struct {
	Valid bool
	Hash  uint32
}

// Scan implements sql.Scanner
func (h *NullHash) Scan(value interface{}) error {
	var n sql.NullInt64
	if err := n.Scan(value); err != nil {
		return err
	}
	h.Valid = n.Valid
	h.Hash = uint32(n.Int64)
	return nil
}

// Value implements driver.Valuer
func (h NullHash) Value() (driver.Value, error) {
	if !h.Valid {
		return nil, nil
	}
	return int64(h.Hash), nil
}
