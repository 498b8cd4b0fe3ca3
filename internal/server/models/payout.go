package models

import "time"

// Payout is one transfer out of a vault made by the trigger orchestrator.
type Payout struct {
	ID        int64
	Owner     string
	Recipient string
	Amount    int64
	Height    int64
	CreatedAt time.Time
}

// Distribution is the outcome of executing a trigger.
type Distribution struct {
	Owner   string
	Height  int64
	Total   int64
	Payouts []Payout
}
