package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/dmitrijs2005/deadswitch/internal/dbx"
	"github.com/dmitrijs2005/deadswitch/internal/server/events"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// Trigger sources used as metric labels.
const (
	SourceRPC    = "rpc"
	SourceKeeper = "keeper"
	SourceTry    = "try"
)

// TriggerService is the only path that drains a vault. It marks the switch
// triggered and pays every beneficiary in a single transaction.
type TriggerService struct {
	base
}

func NewTriggerService(d Deps) *TriggerService {
	return &TriggerService{base: newBase(d, "trigger")}
}

func (s *TriggerService) ExecuteTrigger(ctx context.Context, owner string) (*models.Distribution, error) {
	return s.Execute(ctx, owner, SourceRPC)
}

// Execute triggers owner's switch once the deadline has passed and
// distributes the vault. A switch that is already triggered with an empty
// vault succeeds without doing anything; one that still holds funds (for
// example after a bare TryTrigger) is paid out now.
func (s *TriggerService) Execute(ctx context.Context, owner, source string) (*models.Distribution, error) {
	height := s.clock.Height()

	var (
		dist  *models.Distribution
		fresh bool
	)
	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sw, err := s.lockSwitch(ctx, tx, owner)
		if err != nil {
			return err
		}
		if !sw.Triggered && !sw.Expired(height) {
			return common.ErrorNotReady
		}

		vault, err := s.repomanager.Vaults(tx).Get(ctx, owner)
		if err != nil {
			return fmt.Errorf("error loading vault: %w", err)
		}

		dist = &models.Distribution{Owner: owner, Height: height, Payouts: []models.Payout{}}
		if sw.Triggered && vault.Balance == 0 {
			return nil
		}

		alloc, err := s.resolveAllocation(ctx, tx, owner)
		if err != nil {
			return err
		}

		if !sw.Triggered {
			if err := s.repomanager.Switches(tx).MarkTriggered(ctx, owner, height); err != nil {
				return err
			}
			fresh = true
		}

		shares := Distribute(vault.Balance, alloc)
		for i, b := range alloc {
			if shares[i] == 0 {
				continue
			}
			p := &models.Payout{Owner: owner, Recipient: b.Recipient, Amount: shares[i], Height: height}
			if err := s.payout(ctx, tx, p); err != nil {
				return err
			}
			dist.Payouts = append(dist.Payouts, *p)
			dist.Total += p.Amount
		}
		return nil
	})
	if err != nil {
		metrics.TriggersTotal.WithLabelValues(source, resultLabel(err)).Inc()
		if common.CodeOf(err) == common.CodeInternal {
			s.logger.Error(ctx, "trigger failed", "owner", owner, "source", source, "error", err)
		} else {
			s.logger.Warn(ctx, "trigger rejected", "owner", owner, "source", source, "error", err)
		}
		return nil, err
	}

	metrics.TriggersTotal.WithLabelValues(source, "ok").Inc()
	metrics.PayoutAmountTotal.Add(float64(dist.Total))
	s.logger.Info(ctx, "trigger executed", "owner", owner, "source", source, "height", height,
		"total", dist.Total, "payouts", len(dist.Payouts))

	if fresh {
		s.publish(ctx, events.New(events.TypeSwitchTriggered, owner, height, map[string]any{
			"distributed": true,
			"total":       dist.Total,
			"payouts":     len(dist.Payouts),
		}))
	}
	return dist, nil
}

// Distribute splits balance by the percentages in alloc, which must sum to
// 100. Each share is floor(balance*p/100), computed without overflowing
// int64; the rounding remainder goes to the first entry.
func Distribute(balance int64, alloc []models.Beneficiary) []int64 {
	shares := make([]int64, len(alloc))
	if len(alloc) == 0 || balance <= 0 {
		return shares
	}

	q, r := balance/models.FullAllocation, balance%models.FullAllocation
	var paid int64
	for i, b := range alloc {
		p := int64(b.Percentage)
		shares[i] = q*p + r*p/models.FullAllocation
		paid += shares[i]
	}
	shares[0] += balance - paid
	return shares
}

// GetPayouts lists recorded payouts for owner in the order they were made.
func (s *TriggerService) GetPayouts(ctx context.Context, owner string) ([]models.Payout, error) {
	return s.repomanager.Payouts(s.db).ListByOwner(ctx, owner)
}

// DueSwitches lists up to limit untriggered switches whose deadline has
// passed at the current height.
func (s *TriggerService) DueSwitches(ctx context.Context, limit int) ([]string, int64, error) {
	height := s.clock.Height()
	owners, err := s.repomanager.Switches(s.db).ListDue(ctx, height, limit)
	if err != nil {
		return nil, 0, err
	}
	return owners, height, nil
}
