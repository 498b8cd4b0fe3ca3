package models

import "time"

// Bounds for switch timing, in blocks.
const (
	MinInterval    int64 = 144
	MaxInterval    int64 = 52560
	MinGracePeriod int64 = 10
	MaxGracePeriod int64 = 10000
)

// Switch is the per-owner liveness record. Triggered only ever moves from
// false to true.
type Switch struct {
	Owner       string
	Interval    int64
	GracePeriod int64
	LastCheckIn int64
	Triggered   bool
	TriggeredAt *int64
	CreatedAt   time.Time
}

// Deadline is the first height at which the switch may be triggered.
func (s *Switch) Deadline() int64 {
	return s.LastCheckIn + s.Interval + s.GracePeriod
}

// Expired reports whether height has reached the deadline.
func (s *Switch) Expired(height int64) bool {
	return height >= s.Deadline()
}

// SwitchStatus is the public liveness summary of a switch.
type SwitchStatus struct {
	Active      bool
	LastCheckIn int64
}

func (s *Switch) Status() SwitchStatus {
	return SwitchStatus{Active: !s.Triggered, LastCheckIn: s.LastCheckIn}
}
