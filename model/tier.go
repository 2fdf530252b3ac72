package model

// UserTier is the joined view of tier + user_tier for a single user
type UserTier struct {
	UserID        string `db:"user_id"`
	TierName      string `db:"tier_name"`
	MaxDailySpins int64  `db:"max_daily_spins"`
	Color         string `db:"color"`
}
