package repository

import (
	"context"
	"database/sql"
	"errors"
	"github.com/citydeals/spinwheel/model"
)

// Limit ...
type Limit interface {
	LockGlobalLimit(ctx context.Context) (model.GlobalLimit, error)
	LockMerchantLimit(ctx context.Context, merchantCode string) (model.NullMerchantLimit, error)
}

type limitImpl struct {
}

// NewLimit ...
func NewLimit() Limit {
	return &limitImpl{}
}

const globalLimitQuery = `
SELECT id, daily_limit, monthly_limit, manual_override
FROM global_limit
WHERE id = 1
`

const merchantLimitQuery = `
SELECT merchant_code, daily_limit, monthly_limit, active
FROM merchant_limit
WHERE merchant_code = ? AND active = TRUE
`

// LockGlobalLimit locks the singleton row, serializing allocations
func (l *limitImpl) LockGlobalLimit(ctx context.Context) (model.GlobalLimit, error) {
	var result model.GlobalLimit
	err := GetTx(ctx).GetContext(ctx, &result, globalLimitQuery+" FOR UPDATE")
	return result, err
}

// LockMerchantLimit ...
func (l *limitImpl) LockMerchantLimit(
	ctx context.Context, merchantCode string,
) (model.NullMerchantLimit, error) {
	var limit model.MerchantLimit
	err := GetTx(ctx).GetContext(ctx, &limit, merchantLimitQuery+" FOR UPDATE", merchantCode)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullMerchantLimit{}, nil
	}
	if err != nil {
		return model.NullMerchantLimit{}, err
	}
	return model.NullMerchantLimit{Valid: true, Limit: limit}, nil
}
