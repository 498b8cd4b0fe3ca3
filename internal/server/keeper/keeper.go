// Package keeper sweeps for switches whose deadline has passed and executes
// their triggers without waiting for an outside caller.
package keeper

import (
	"context"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/logging"
	"github.com/dmitrijs2005/deadswitch/internal/server/metrics"
	"github.com/dmitrijs2005/deadswitch/internal/server/models"
)

// Trigger is the part of the trigger orchestrator the keeper drives.
type Trigger interface {
	DueSwitches(ctx context.Context, limit int) ([]string, int64, error)
	Execute(ctx context.Context, owner, source string) (*models.Distribution, error)
}

type Keeper struct {
	trigger   Trigger
	interval  time.Duration
	batchSize int
	source    string
	logger    logging.Logger
}

func New(t Trigger, interval time.Duration, batchSize int, source string, l logging.Logger) *Keeper {
	return &Keeper{
		trigger:   t,
		interval:  interval,
		batchSize: batchSize,
		source:    source,
		logger:    l.With("module", "keeper"),
	}
}

// Run sweeps every interval until ctx is cancelled.
func (k *Keeper) Run(ctx context.Context) error {
	k.logger.Info(ctx, "keeper started", "interval", k.interval.String(), "batch", k.batchSize)

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			k.logger.Info(ctx, "keeper stopped")
			return nil
		case <-ticker.C:
			k.Sweep(ctx)
		}
	}
}

// Sweep executes one batch and returns how many triggers succeeded. A
// failing owner is logged and skipped.
func (k *Keeper) Sweep(ctx context.Context) int {
	owners, height, err := k.trigger.DueSwitches(ctx, k.batchSize)
	if err != nil {
		k.logger.Error(ctx, "listing due switches failed", "error", err)
		return 0
	}
	metrics.KeeperLastHeight.Set(float64(height))

	done := 0
	for _, owner := range owners {
		if ctx.Err() != nil {
			break
		}
		if _, err := k.trigger.Execute(ctx, owner, k.source); err != nil {
			k.logger.Warn(ctx, "auto trigger failed", "owner", owner, "height", height, "error", err)
			continue
		}
		done++
	}
	if len(owners) > 0 {
		k.logger.Info(ctx, "keeper sweep", "height", height, "due", len(owners), "triggered", done)
	}
	return done
}
