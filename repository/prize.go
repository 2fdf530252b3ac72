package repository

import (
	"context"
	"github.com/citydeals/spinwheel/model"
)

// Prize ...
type Prize interface {
	GetActivePrizes(ctx context.Context) ([]model.Prize, error)
	GetSafePrize(ctx context.Context) (model.Prize, error)
}

type prizeImpl struct {
}

// NewPrize ...
func NewPrize() Prize {
	return &prizeImpl{}
}

// GetActivePrizes ...
func (p *prizeImpl) GetActivePrizes(ctx context.Context) ([]model.Prize, error) {
	query := `
SELECT id, prize_key, label, kind, value, weight, active, safe_fallback
FROM prize
WHERE active = TRUE
`
	var result []model.Prize
	err := GetReader(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// GetSafePrize returns the designated minimum safe prize
func (p *prizeImpl) GetSafePrize(ctx context.Context) (model.Prize, error) {
	query := `
SELECT id, prize_key, label, kind, value, weight, active, safe_fallback
FROM prize
WHERE active = TRUE AND safe_fallback = TRUE
LIMIT 1
`
	var result model.Prize
	err := GetReader(ctx).GetContext(ctx, &result, query)
	return result, err
}
