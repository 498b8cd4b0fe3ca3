// Package chain supplies the logical block height that all deadlines are
// expressed in.
package chain

import (
	"sync/atomic"
	"time"
)

// Clock reports the current block height.
type Clock interface {
	Height() int64
}

// WallClock derives the height from wall time: one block per Interval since
// Genesis. Heights before Genesis are 0.
type WallClock struct {
	Genesis  time.Time
	Interval time.Duration

	now func() time.Time
}

func NewWallClock(genesis time.Time, interval time.Duration) *WallClock {
	return &WallClock{Genesis: genesis, Interval: interval, now: time.Now}
}

func (c *WallClock) Height() int64 {
	if c.Interval <= 0 {
		return 0
	}
	elapsed := c.now().Sub(c.Genesis)
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed / c.Interval)
}

// ManualClock is advanced explicitly. It is safe for concurrent use.
type ManualClock struct {
	height atomic.Int64
}

func NewManualClock(height int64) *ManualClock {
	c := &ManualClock{}
	c.height.Store(height)
	return c
}

func (c *ManualClock) Height() int64 { return c.height.Load() }

// Advance mines n empty blocks and returns the new height.
func (c *ManualClock) Advance(n int64) int64 { return c.height.Add(n) }

func (c *ManualClock) Set(height int64) { c.height.Store(height) }
