// Package common defines shared constants and sentinel errors used across
// client and server layers of DeadSwitch. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Input validation.
	ErrorInvalidInput    = errors.New("invalid input")
	ErrorInvalidInterval = errors.New("invalid interval")
	ErrorInvalidGrace    = errors.New("invalid grace period")
	ErrorInvalidAmount   = errors.New("invalid amount")
	ErrorInvalidMessage  = errors.New("invalid message")

	// Switch lifecycle.
	ErrorNotReady  = errors.New("deadline not reached")
	ErrorTriggered = errors.New("switch already triggered")
	ErrorFrozen    = errors.New("configuration frozen after trigger")

	// Vault.
	ErrorInsufficientBalance = errors.New("insufficient balance")

	// Guardians.
	ErrorNotGuardian   = errors.New("caller is not a guardian")
	ErrorLimitExceeded = errors.New("extension limit exceeded")

	// Beneficiaries. The fixed list reports allocation problems as plain
	// invalid input, the dynamic list has its own percentage/index errors.
	ErrorInvalidAllocation    = errors.New("invalid beneficiary allocation")
	ErrorTooManyBeneficiaries = errors.New("too many beneficiaries")
	ErrorInvalidPercentage    = errors.New("invalid percentage")
	ErrorInvalidIndex         = errors.New("invalid index")
	ErrorCapacityReached      = errors.New("beneficiary capacity reached")
	ErrorNoBeneficiaries      = errors.New("no usable beneficiary configuration")

	// Ownership tokens.
	ErrorNotHolder = errors.New("caller is not the token holder")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
