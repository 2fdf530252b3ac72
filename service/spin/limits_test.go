package spin

import (
	"database/sql"
	"testing"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/stretchr/testify/assert"
)

func newBudgetState(daily, monthly, spentDaily, spentMonthly string) budgetState {
	return budgetState{
		scope: scopeLimits{
			daily:   mustDecimal(daily),
			monthly: mustDecimal(monthly),
		},
		spend: model.SpendTotals{
			Daily:   mustDecimal(spentDaily),
			Monthly: mustDecimal(spentMonthly),
		},
	}
}

func TestBudgetState_SafeModeReason(t *testing.T) {
	t.Run("within budget", func(t *testing.T) {
		b := newBudgetState("100", "1000", "50", "500")
		assert.Equal(t, "", b.safeModeReason())
	})

	t.Run("manual override wins", func(t *testing.T) {
		b := newBudgetState("100", "1000", "50", "500")
		b.scope.manualOverride = true
		assert.Equal(t, safeModeReasonManual, b.safeModeReason())
	})

	t.Run("daily at limit", func(t *testing.T) {
		b := newBudgetState("100", "1000", "100", "500")
		assert.Equal(t, safeModeReasonDaily, b.safeModeReason())
	})

	t.Run("monthly at limit", func(t *testing.T) {
		b := newBudgetState("100", "1000", "50", "1000")
		assert.Equal(t, safeModeReasonMonthly, b.safeModeReason())
	})
}

func TestBudgetState_Fits(t *testing.T) {
	b := newBudgetState("100", "1000", "80", "900")

	// remaining is min(20, 100) = 20
	assert.True(t, b.remaining().Equal(mustDecimal("20")))
	assert.True(t, b.fits(mustDecimal("20")))
	assert.False(t, b.fits(mustDecimal("20.01")))

	// monthly becomes the tighter period
	b = newBudgetState("100", "1000", "80", "995")
	assert.True(t, b.remaining().Equal(mustDecimal("5")))
	assert.False(t, b.fits(mustDecimal("10")))
}

func TestScopeLimits_Name(t *testing.T) {
	assert.Equal(t, "global", scopeLimits{}.name())
	assert.Equal(t, "merchant:coffee-shop", scopeLimits{
		merchantCode: sql.NullString{Valid: true, String: "coffee-shop"},
	}.name())
}

func TestAlertLimiter(t *testing.T) {
	now := time.Date(2022, time.Month(5), 18, 10, 30, 0, 0, time.UTC)
	limiter := newAlertLimiter(5 * time.Minute)

	assert.True(t, limiter.Allow("daily_limit:global", now))
	assert.False(t, limiter.Allow("daily_limit:global", now.Add(time.Minute)))

	// other keys are independent
	assert.True(t, limiter.Allow("daily_limit:merchant:coffee-shop", now.Add(time.Minute)))

	assert.True(t, limiter.Allow("daily_limit:global", now.Add(5*time.Minute)))
}
