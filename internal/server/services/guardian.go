package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// GuardianService manages who may push an owner's deadline and enforces the
// per-guardian extension budget.
type GuardianService struct {
	base
}

func NewGuardianService(d Deps) *GuardianService {
	return &GuardianService{base: newBase(d, "guardians")}
}

// AddGuardian lets guardian extend owner's deadline. An owner may guard
// their own switch.
func (s *GuardianService) AddGuardian(ctx context.Context, owner, guardian string) error {
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.lockSwitch(ctx, tx, owner); err != nil {
			return err
		}
		if guardian == "" {
			return common.ErrorInvalidInput
		}
		return s.repomanager.Guardians(tx).Add(ctx, owner, guardian)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "guardian added", "owner", owner, "guardian", guardian)
	return nil
}

func (s *GuardianService) RemoveGuardian(ctx context.Context, owner, guardian string) error {
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.lockSwitch(ctx, tx, owner); err != nil {
			return err
		}
		return s.repomanager.Guardians(tx).Remove(ctx, owner, guardian)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "guardian removed", "owner", owner, "guardian", guardian)
	return nil
}

// ExtendDeadline is called by caller on behalf of owner. Each extension adds
// one interval to the last check-in, at most models.MaxExtensions times per
// guardian.
func (s *GuardianService) ExtendDeadline(ctx context.Context, owner, caller string) (*models.Switch, int, error) {
	var (
		sw    *models.Switch
		count int
	)
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		sw, err = s.lockSwitch(ctx, tx, owner)
		if err != nil {
			return err
		}

		repo := s.repomanager.Guardians(tx)
		g, err := repo.Get(ctx, owner, caller)
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotGuardian
		}
		if err != nil {
			return err
		}
		if sw.Triggered {
			return common.ErrorTriggered
		}
		if g.ExtensionCount >= models.MaxExtensions {
			return common.ErrorLimitExceeded
		}

		count, err = repo.IncrementExtensions(ctx, owner, caller)
		if err != nil {
			return err
		}
		sw.LastCheckIn += sw.Interval
		return s.repomanager.Switches(tx).UpdateCheckIn(ctx, owner, sw.LastCheckIn)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotGuardian) || errors.Is(err, common.ErrorLimitExceeded) {
			s.logger.Warn(ctx, "extension denied", "owner", owner, "caller", caller, "error", err)
		}
		return nil, 0, err
	}

	metrics.GuardianExtensionsTotal.Inc()
	s.logger.Info(ctx, "deadline extended", "owner", owner, "guardian", caller, "count", count, "deadline", sw.Deadline())
	return sw, count, nil
}

func (s *GuardianService) IsGuardian(ctx context.Context, owner, guardian string) (bool, error) {
	_, err := s.repomanager.Guardians(s.db).Get(ctx, owner, guardian)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	return err == nil, err
}

// GetExtensionCount is 0 when guardian is unknown.
func (s *GuardianService) GetExtensionCount(ctx context.Context, owner, guardian string) (int, error) {
	g, err := s.repomanager.Guardians(s.db).Get(ctx, owner, guardian)
	if errors.Is(err, common.ErrorNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return g.ExtensionCount, nil
}

func (s *GuardianService) ListGuardians(ctx context.Context, owner string) ([]models.Guardian, error) {
	return s.repomanager.Guardians(s.db).List(ctx, owner)
}
