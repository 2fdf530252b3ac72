package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/citydeals/spinwheel/model"
)

// Tier ...
type Tier interface {
	GetUserTier(ctx context.Context, userID string) (model.UserTier, bool, error)
}

type tierImpl struct {
}

// NewTier ...
func NewTier() Tier {
	return &tierImpl{}
}

// GetUserTier returns found = false when the user has no tier assignment
func (t *tierImpl) GetUserTier(
	ctx context.Context, userID string,
) (model.UserTier, bool, error) {
	query := `
SELECT ut.user_id AS user_id, t.name AS tier_name,
	t.max_daily_spins AS max_daily_spins, t.color AS color
FROM user_tier ut
JOIN tier t ON t.id = ut.tier_id
WHERE ut.user_id = ?
`
	var result model.UserTier
	err := GetReader(ctx).GetContext(ctx, &result, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserTier{}, false, nil
	}
	if err != nil {
		return model.UserTier{}, false, err
	}
	return result, true, nil
}
