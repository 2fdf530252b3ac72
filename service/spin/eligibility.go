package spin

import (
	"context"
	"time"

	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/pkg/util"
)

// checkEligibility runs the admission rules in order, first denial wins.
// All checks are read-only. The cooldown and fraud checks are best-effort
// (outside the allocation transaction), the quota check is re-validated
// inside it.
func (s *Service) checkEligibility(
	ctx context.Context, req Request, now time.Time,
	tier model.UserTier, superAvailable bool,
) error {
	last, err := s.ledgerRepo.GetLastSpinRecord(ctx, req.UserID)
	if err != nil {
		return err
	}
	if last.Valid && now.Sub(last.Record.CreatedAt) < s.conf.Cooldown() {
		return ErrCooldownActive
	}

	since := now.Add(-s.conf.FraudWindow())

	if req.DeviceID != "" {
		count, err := s.ledgerRepo.CountUsersByDeviceHash(ctx, util.HashFunc(req.DeviceID), since)
		if err != nil {
			return err
		}
		if count >= s.conf.DeviceUserThreshold {
			return ErrSuspiciousActivity
		}
	}

	if req.IPAddress != "" {
		count, err := s.ledgerRepo.CountUsersByIPHash(ctx, util.HashFunc(req.IPAddress), since)
		if err != nil {
			return err
		}
		if count >= s.conf.IPUserThreshold {
			return ErrSuspiciousActivity
		}
	}

	spinsMade, err := s.ledgerRepo.CountUserSpins(ctx, req.UserID, s.localDayStart(now))
	if err != nil {
		return err
	}
	if spinsMade >= tier.MaxDailySpins && !superAvailable {
		return &QuotaError{SpinsMade: spinsMade, MaxDailySpins: tier.MaxDailySpins}
	}

	return nil
}
