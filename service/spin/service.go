package spin

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/citydeals/spinwheel/config"
	"github.com/citydeals/spinwheel/model"
	"github.com/citydeals/spinwheel/pkg/wheel"
	"github.com/citydeals/spinwheel/repository"
	"github.com/shopspring/decimal"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Allocate(ctx context.Context, req Request) (Result, error)
	DryRun(ctx context.Context, req Request) (DryRunResult, error)
}

// Request carries one allocation request. UserID comes from the verified
// auth context upstream, never from client input.
type Request struct {
	UserID       string
	DeviceID     string
	IPAddress    string
	MerchantCode string
}

// Result ...
type Result struct {
	PrizeKey       string
	PrizeLabel     string
	PrizeKind      model.PrizeKind
	PrizeValue     decimal.Decimal
	IsSuperSpin    bool
	SuperEventName string
}

// DryRunResult ...
type DryRunResult struct {
	SpinsMadeToday  int64
	MaxDailySpins   int64
	TierName        string
	TierColor       string
	SuperSpinActive bool
	SuperEventName  string
}

// Service ...
type Service struct {
	provider repository.Provider

	prizeRepo    repository.Prize
	campaignRepo repository.Campaign
	eventRepo    repository.SuperEvent
	limitRepo    repository.Limit
	tierRepo     repository.Tier
	ledgerRepo   repository.Ledger
	opsRepo      repository.OpsEvent

	conf config.EngineConfig
	loc  *time.Location

	cache  *configCache
	alerts *alertLimiter

	rand wheel.Rand
	now  func() time.Time
}

// NewService ...
func NewService(
	provider repository.Provider,
	prizeRepo repository.Prize,
	campaignRepo repository.Campaign,
	eventRepo repository.SuperEvent,
	limitRepo repository.Limit,
	tierRepo repository.Tier,
	ledgerRepo repository.Ledger,
	opsRepo repository.OpsEvent,
	conf config.EngineConfig,
) *Service {
	return &Service{
		provider: provider,

		prizeRepo:    prizeRepo,
		campaignRepo: campaignRepo,
		eventRepo:    eventRepo,
		limitRepo:    limitRepo,
		tierRepo:     tierRepo,
		ledgerRepo:   ledgerRepo,
		opsRepo:      opsRepo,

		conf: conf,
		loc:  conf.Location(),

		cache:  newConfigCache(conf.ConfigCacheSeconds, prizeRepo, campaignRepo, eventRepo, tierRepo),
		alerts: newAlertLimiter(conf.AlertInterval()),

		rand: &lockedRand{rand: rand.New(rand.NewSource(time.Now().UnixNano()))},
		now:  time.Now,
	}
}

type lockedRand struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func (l *lockedRand) Int63n(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rand.Int63n(n)
}

// Allocate runs the full eligibility -> pool -> draw -> ledger sequence.
// The spend check, the draw and the ledger write commit as one transaction,
// serialized on the global limit row.
func (s *Service) Allocate(ctx context.Context, req Request) (Result, error) {
	now := s.now()
	roCtx := s.provider.Readonly(ctx)

	tier, err := s.userTier(roCtx, req.UserID)
	if err != nil {
		return Result{}, err
	}

	super, err := s.superAvailability(roCtx, req.UserID, now)
	if err != nil {
		return Result{}, err
	}

	if err := s.checkEligibility(roCtx, req, now, tier, super.available); err != nil {
		observeDenial(err)
		return Result{}, err
	}

	var result Result
	var safeReason, safeScope string

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		scope, err := s.lockScope(ctx, req.MerchantCode)
		if err != nil {
			return err
		}

		spinsMade, err := s.ledgerRepo.CountUserSpins(ctx, req.UserID, s.localDayStart(now))
		if err != nil {
			return err
		}
		quotaExhausted := spinsMade >= tier.MaxDailySpins

		budget, err := s.loadBudget(ctx, scope, now)
		if err != nil {
			return err
		}
		reason := budget.safeModeReason()

		// safe mode halts super payouts too, the kill switch and the scope
		// caps take precedence over a pending grant
		if super.available && reason == "" {
			cand, ok, err := s.trySuperSpin(ctx, req.UserID, super)
			if err != nil {
				return err
			}
			if ok {
				result, err = s.record(ctx, req, cand, now)
				return err
			}
		}

		// the super spin is additive to the quota, a request that is out of
		// quota and missed the super grant gets nothing else
		if quotaExhausted {
			return &QuotaError{SpinsMade: spinsMade, MaxDailySpins: tier.MaxDailySpins}
		}

		var cand candidate
		if reason != "" {
			safeReason = reason
			safeScope = scope.name()
			cand, err = s.safeCandidate(ctx)
			if err != nil {
				return err
			}
		} else {
			pool, err := s.buildPool(ctx, now, budget)
			if err != nil {
				return err
			}
			cand, err = s.drawWithRerollRules(ctx, pool, req.UserID, now)
			if err != nil {
				return err
			}
		}

		result, err = s.record(ctx, req, cand, now)
		return err
	})
	if err != nil {
		observeDenial(err)
		return Result{}, err
	}

	if safeReason != "" {
		s.reportSafeMode(ctx, safeReason, safeScope, now)
	}
	spinsTotal.WithLabelValues(result.PrizeKind.String()).Inc()
	return result, nil
}

// DryRun reports the user's current state without drawing or writing
func (s *Service) DryRun(ctx context.Context, req Request) (DryRunResult, error) {
	now := s.now()
	ctx = s.provider.Readonly(ctx)

	tier, err := s.userTier(ctx, req.UserID)
	if err != nil {
		return DryRunResult{}, err
	}

	super, err := s.superAvailability(ctx, req.UserID, now)
	if err != nil {
		return DryRunResult{}, err
	}

	spinsMade, err := s.ledgerRepo.CountUserSpins(ctx, req.UserID, s.localDayStart(now))
	if err != nil {
		return DryRunResult{}, err
	}

	result := DryRunResult{
		SpinsMadeToday:  spinsMade,
		MaxDailySpins:   tier.MaxDailySpins,
		TierName:        tier.TierName,
		TierColor:       tier.Color,
		SuperSpinActive: super.available,
	}
	if super.available {
		result.SuperEventName = super.event.Name
	}
	return result, nil
}

func (s *Service) userTier(ctx context.Context, userID string) (model.UserTier, error) {
	tier, found, err := s.cache.UserTier(ctx, userID)
	if err != nil {
		return model.UserTier{}, err
	}
	if !found {
		return model.UserTier{
			UserID:        userID,
			TierName:      s.conf.DefaultTierName,
			MaxDailySpins: s.conf.DefaultMaxDailySpins,
			Color:         s.conf.DefaultTierColor,
		}, nil
	}
	return tier, nil
}

type superState struct {
	available bool
	event     model.SuperEvent
	prizes    []model.SuperPrize
}

func (s *Service) superAvailability(
	ctx context.Context, userID string, now time.Time,
) (superState, error) {
	nullEvent, err := s.cache.ActiveSuperEvent(ctx, now)
	if err != nil || !nullEvent.Valid {
		return superState{}, err
	}
	event := nullEvent.Event

	prizes, err := s.cache.SuperPrizes(ctx, event.ID)
	if err != nil {
		return superState{}, err
	}
	if len(prizes) == 0 {
		return superState{}, nil
	}

	granted, err := s.ledgerRepo.HasSuperSpin(ctx, userID, event.ID)
	if err != nil {
		return superState{}, err
	}
	if granted {
		return superState{}, nil
	}

	return superState{available: true, event: event, prizes: prizes}, nil
}

func (s *Service) record(
	ctx context.Context, req Request, cand candidate, now time.Time,
) (Result, error) {
	record := model.SpinRecord{
		UserID:       req.UserID,
		MerchantCode: nullString(req.MerchantCode),

		PrizeKey:   cand.prizeKey,
		PrizeLabel: cand.label,
		PrizeKind:  cand.kind,
		PrizeValue: cand.value,

		Status: model.SpinStatusCompleted,

		DeviceID:   nullString(req.DeviceID),
		DeviceHash: nullHashOf(req.DeviceID),
		IPAddress:  nullString(req.IPAddress),
		IPHash:     nullHashOf(req.IPAddress),

		CampaignID:   cand.campaignID,
		SuperEventID: cand.superEventID,
		IsSuperSpin:  cand.superEventID.Valid,

		CreatedAt: now.UTC(),
	}

	_, err := s.ledgerRepo.InsertSpinRecord(ctx, record)
	if err != nil {
		return Result{}, err
	}

	return Result{
		PrizeKey:       cand.prizeKey,
		PrizeLabel:     cand.label,
		PrizeKind:      cand.kind,
		PrizeValue:     cand.value,
		IsSuperSpin:    cand.superEventID.Valid,
		SuperEventName: cand.superEventName,
	}, nil
}

// localDayStart is the start of the user-facing quota day, in UTC
func (s *Service) localDayStart(now time.Time) time.Time {
	local := now.In(s.loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, s.loc).UTC()
}

func utcDayStart(now time.Time) time.Time {
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func utcMonthStart(now time.Time) time.Time {
	year, month, _ := now.UTC().Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
