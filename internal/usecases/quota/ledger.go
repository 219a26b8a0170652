package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youtube-data-api/infrastructure/repository"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
)

// Ledger hands out API keys that can still afford a call today.
type Ledger interface {
	// Acquire returns a record with strictly more headroom than cost, or nil
	// when every active key is exhausted for the day.
	Acquire(ctx context.Context, cost int) (*domain.QuotaRecord, error)
	// Debit adds used to the record without re-checking the limit.
	Debit(ctx context.Context, recordID int64, used int) error
	// Reserve acquires a record and debits cost from it atomically. It fails
	// with domain.ErrQuotaExhausted when no key can afford cost.
	Reserve(ctx context.Context, cost int) (*domain.QuotaRecord, error)
	// MarkExhausted consumes the rest of the record's quota for the day.
	MarkExhausted(ctx context.Context, recordID int64) error
}

type Service struct {
	usageRepo       repository.QuotaUsageRepository
	defaultLimit    int
	reserveAttempts int
	now             func() time.Time
}

func NewService(cfg *config.Config, usageRepo repository.QuotaUsageRepository) *Service {
	attempts := cfg.Quota.ReserveAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Service{
		usageRepo:       usageRepo,
		defaultLimit:    cfg.Quota.DefaultLimit,
		reserveAttempts: attempts,
		now:             time.Now,
	}
}

func (s *Service) Acquire(ctx context.Context, cost int) (*domain.QuotaRecord, error) {
	record, err := s.acquire(ctx, cost)
	if errors.Is(err, domain.ErrProvisioningConflict) {
		logrus.WithField("cost", cost).Warn("quota: provisioning conflict, retrying acquire")
		record, err = s.acquire(ctx, cost)
	}
	return record, err
}

func (s *Service) acquire(ctx context.Context, cost int) (*domain.QuotaRecord, error) {
	day := domain.UsageDate(s.now())

	record, err := s.usageRepo.FindAvailable(ctx, day, cost)
	if err != nil {
		return nil, fmt.Errorf("failed to find quota record: %w", err)
	}
	if record != nil {
		return record, nil
	}

	record, err = s.usageRepo.Provision(ctx, day, s.defaultLimit)
	if err != nil {
		if errors.Is(err, domain.ErrProvisioningConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to provision quota record: %w", err)
	}

	if record == nil {
		logrus.WithFields(logrus.Fields{
			"usage_date": day,
			"cost":       cost,
		}).Warn("quota: no api key with enough quota today")
		return nil, nil
	}

	if !record.CanAfford(cost) {
		logrus.WithFields(logrus.Fields{
			"google_api_key_id": record.APIKeyID,
			"quota_limit":       record.QuotaLimit,
			"cost":              cost,
		}).Warn("quota: provisioned record cannot afford the call")
		return nil, nil
	}

	logrus.WithFields(logrus.Fields{
		"google_api_key_id": record.APIKeyID,
		"usage_date":        day,
	}).Info("quota: provisioned record for api key")

	return record, nil
}

func (s *Service) Debit(ctx context.Context, recordID int64, used int) error {
	if err := s.usageRepo.Debit(ctx, recordID, used); err != nil {
		return fmt.Errorf("failed to debit quota record %d: %w", recordID, err)
	}
	return nil
}

func (s *Service) Reserve(ctx context.Context, cost int) (*domain.QuotaRecord, error) {
	for attempt := 1; attempt <= s.reserveAttempts; attempt++ {
		record, err := s.Acquire(ctx, cost)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, domain.ErrQuotaExhausted
		}

		reserved, err := s.usageRepo.Reserve(ctx, record.ID, cost)
		if err != nil {
			return nil, fmt.Errorf("failed to reserve quota on record %d: %w", record.ID, err)
		}
		if reserved != nil {
			reserved.APIKey = record.APIKey
			return reserved, nil
		}

		logrus.WithFields(logrus.Fields{
			"record_id": record.ID,
			"cost":      cost,
			"attempt":   attempt,
		}).Debug("quota: headroom taken by a concurrent reservation")
	}

	return nil, domain.ErrQuotaExhausted
}

func (s *Service) MarkExhausted(ctx context.Context, recordID int64) error {
	if err := s.usageRepo.MarkExhausted(ctx, recordID); err != nil {
		return fmt.Errorf("failed to mark quota record %d exhausted: %w", recordID, err)
	}
	return nil
}
