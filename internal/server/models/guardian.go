package models

import "time"

// MaxExtensions is how many times a single guardian may extend a deadline.
const MaxExtensions = 10

type Guardian struct {
	Owner          string
	Guardian       string
	ExtensionCount int
	CreatedAt      time.Time
}
