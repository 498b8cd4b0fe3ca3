package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/events"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// SwitchService owns the switch lifecycle: registration, heartbeats and the
// bare trigger transition.
type SwitchService struct {
	base
}

func NewSwitchService(d Deps) *SwitchService {
	return &SwitchService{base: newBase(d, "switches")}
}

// Height returns the current block height.
func (s *SwitchService) Height() int64 {
	return s.clock.Height()
}

// Register creates the owner's switch together with an empty vault and the
// ownership token, all in one transaction.
func (s *SwitchService) Register(ctx context.Context, owner string, interval, gracePeriod int64) (*models.Switch, *models.Token, error) {
	if owner == "" {
		return nil, nil, common.ErrorInvalidInput
	}
	if interval < models.MinInterval || interval > models.MaxInterval {
		return nil, nil, common.ErrorInvalidInterval
	}
	if gracePeriod < models.MinGracePeriod || gracePeriod > models.MaxGracePeriod {
		return nil, nil, common.ErrorInvalidGrace
	}

	height := s.clock.Height()
	sw := &models.Switch{
		Owner:       owner,
		Interval:    interval,
		GracePeriod: gracePeriod,
		LastCheckIn: height,
	}

	var token *models.Token
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Switches(tx).Create(ctx, sw); err != nil {
			return err
		}
		if err := s.repomanager.Vaults(tx).Create(ctx, owner); err != nil {
			return fmt.Errorf("error creating vault: %w", err)
		}
		var err error
		token, err = s.repomanager.Tokens(tx).Mint(ctx, owner, owner)
		if err != nil {
			return fmt.Errorf("error minting token: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Warn(ctx, "duplicate registration", "owner", owner)
		} else {
			s.logger.Error(ctx, "register failed", "owner", owner, "error", err)
		}
		return nil, nil, err
	}

	metrics.SwitchesRegisteredTotal.Inc()
	s.logger.Info(ctx, "switch registered", "owner", owner, "height", height, "interval", interval, "grace", gracePeriod, "token", token.ID)
	s.publish(ctx, events.New(events.TypeSwitchRegistered, owner, height, map[string]any{
		"interval":    interval,
		"gracePeriod": gracePeriod,
		"tokenId":     token.ID,
	}))

	return sw, token, nil
}

// Heartbeat moves the owner's check-in to the current height and returns it.
func (s *SwitchService) Heartbeat(ctx context.Context, owner string) (int64, error) {
	height := s.clock.Height()

	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sw, err := s.lockSwitch(ctx, tx, owner)
		if err != nil {
			return err
		}
		if sw.Triggered {
			return common.ErrorTriggered
		}
		return s.repomanager.Switches(tx).UpdateCheckIn(ctx, owner, height)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug(ctx, "heartbeat", "owner", owner, "height", height)
	return height, nil
}

// Status returns common.ErrorNotFound when the owner has no switch.
func (s *SwitchService) Status(ctx context.Context, owner string) (*models.SwitchStatus, error) {
	sw, err := s.GetSwitch(ctx, owner)
	if err != nil {
		return nil, err
	}
	st := sw.Status()
	return &st, nil
}

func (s *SwitchService) GetSwitch(ctx context.Context, owner string) (*models.Switch, error) {
	return s.repomanager.Switches(s.db).Get(ctx, owner)
}

// IsTriggered is false for unknown owners.
func (s *SwitchService) IsTriggered(ctx context.Context, owner string) (bool, error) {
	sw, err := s.GetSwitch(ctx, owner)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return sw.Triggered, nil
}

// TryTrigger flips the switch to triggered once its deadline has passed.
// Calling it on an already triggered switch is a successful no-op. Funds are
// not moved; see TriggerService.ExecuteTrigger.
func (s *SwitchService) TryTrigger(ctx context.Context, owner string) (*models.Switch, error) {
	height := s.clock.Height()

	var (
		sw    *models.Switch
		fresh bool
	)
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		sw, err = s.lockSwitch(ctx, tx, owner)
		if err != nil {
			return err
		}
		if sw.Triggered {
			return nil
		}
		if !sw.Expired(height) {
			return common.ErrorNotReady
		}
		if err := s.repomanager.Switches(tx).MarkTriggered(ctx, owner, height); err != nil {
			return err
		}
		sw.Triggered = true
		sw.TriggeredAt = &height
		fresh = true
		return nil
	})
	if err != nil {
		metrics.TriggersTotal.WithLabelValues(SourceTry, resultLabel(err)).Inc()
		return nil, err
	}
	if !fresh {
		metrics.TriggersTotal.WithLabelValues(SourceTry, "noop").Inc()
		return sw, nil
	}

	metrics.TriggersTotal.WithLabelValues(SourceTry, "ok").Inc()
	s.logger.Info(ctx, "switch triggered", "owner", owner, "height", height, "deadline", sw.Deadline())
	s.publish(ctx, events.New(events.TypeSwitchTriggered, owner, height, map[string]any{
		"distributed": false,
	}))
	return sw, nil
}

// resultLabel renders err as the numeric code used in metric labels.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return fmt.Sprint(common.CodeOf(err))
}
