package repository

import (
	"context"
	"github.com/citydeals/spinwheel/model"
)

// OpsEvent ...
type OpsEvent interface {
	InsertOpsEvent(ctx context.Context, event model.OpsEvent) error
}

type opsEventImpl struct {
}

// NewOpsEvent ...
func NewOpsEvent() OpsEvent {
	return &opsEventImpl{}
}

// InsertOpsEvent ...
func (o *opsEventImpl) InsertOpsEvent(ctx context.Context, event model.OpsEvent) error {
	query := `
INSERT INTO ops_event (kind, scope, message, created_at)
VALUES (:kind, :scope, :message, :created_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}
