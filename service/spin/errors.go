package spin

import (
	"errors"
	"fmt"
)

// ErrCooldownActive ...
var ErrCooldownActive = errors.New("please wait a moment before spinning again")

// ErrSuspiciousActivity is intentionally vague, the thresholds behind it
// must not be surfaced to the caller
var ErrSuspiciousActivity = errors.New("suspicious activity detected, please try again later")

// ErrNoPrizesConfigured ...
var ErrNoPrizesConfigured = errors.New("no active prizes configured")

// ErrSafePrizeMissing ...
var ErrSafePrizeMissing = errors.New("safe fallback prize missing from configuration")

// QuotaError is the daily-quota denial, carrying counts for UI display
type QuotaError struct {
	SpinsMade     int64
	MaxDailySpins int64
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("daily spin limit reached (%d/%d)", e.SpinsMade, e.MaxDailySpins)
}

// IsDenial reports whether err is an expected user-facing denial rather
// than an operational failure
func IsDenial(err error) bool {
	var quotaErr *QuotaError
	return errors.Is(err, ErrCooldownActive) ||
		errors.Is(err, ErrSuspiciousActivity) ||
		errors.As(err, &quotaErr)
}
