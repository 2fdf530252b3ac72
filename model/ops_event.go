package model

import "time"

// OpsEvent is an operational event record, written best-effort
type OpsEvent struct {
	ID      int64        `db:"id"`
	Kind    OpsEventKind `db:"kind"`
	Scope   string       `db:"scope"`
	Message string       `db:"message"`

	CreatedAt time.Time `db:"created_at"`
}

// OpsEventKind ...
type OpsEventKind int

const (
	// OpsEventKindSafeMode ...
	OpsEventKindSafeMode OpsEventKind = 1
)
