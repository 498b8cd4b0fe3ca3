package common

import "errors"

// Numeric failure codes returned to callers.
const (
	CodeInvalidInput      = 400
	CodeUnauthorized      = 401
	CodeForbidden         = 403
	CodeNotFound          = 404
	CodeAlreadyExists     = 409
	CodeAlreadyTriggered  = 410
	CodeInvalidPercentage = 413
	CodeInvalidIndex      = 417
	CodeLimitExceeded     = 429
	CodeInternal          = 500
)

var codeMessages = map[int]string{
	CodeInvalidInput:      "Invalid input. Please check your parameters.",
	CodeUnauthorized:      "You are not authorized to perform this action.",
	CodeForbidden:         "This action is forbidden at this time.",
	CodeNotFound:          "Resource not found. Make sure your switch is registered.",
	CodeAlreadyExists:     "Resource already exists.",
	CodeAlreadyTriggered:  "Switch has already been triggered.",
	CodeInvalidPercentage: "Invalid percentage. Allocations must stay within 100%.",
	CodeInvalidIndex:      "Invalid beneficiary index.",
	CodeLimitExceeded:     "Rate limit exceeded. Too many attempts.",
	CodeInternal:          "Internal error occurred during distribution.",
}

// codeTable is checked in order, so more specific errors come first.
var codeTable = []struct {
	err  error
	code int
}{
	{ErrorNotFound, CodeNotFound},
	{ErrorNoBeneficiaries, CodeNotFound},
	{ErrorAlreadyExists, CodeAlreadyExists},
	{ErrorUnauthorized, CodeUnauthorized},
	{ErrInvalidToken, CodeUnauthorized},
	{ErrTokenExpired, CodeUnauthorized},
	{ErrRefreshTokenExpired, CodeUnauthorized},
	{ErrorForbidden, CodeForbidden},
	{ErrorNotReady, CodeForbidden},
	{ErrorTriggered, CodeForbidden},
	{ErrorNotGuardian, CodeForbidden},
	{ErrorNotHolder, CodeForbidden},
	{ErrorFrozen, CodeAlreadyTriggered},
	{ErrorInvalidInput, CodeInvalidInput},
	{ErrorInvalidInterval, CodeInvalidInput},
	{ErrorInvalidGrace, CodeInvalidInput},
	{ErrorInvalidAmount, CodeInvalidInput},
	{ErrorInvalidMessage, CodeInvalidInput},
	{ErrorInsufficientBalance, CodeInvalidInput},
	{ErrorInvalidAllocation, CodeInvalidInput},
	{ErrorTooManyBeneficiaries, CodeInvalidInput},
	{ErrorInvalidPercentage, CodeInvalidPercentage},
	{ErrorInvalidIndex, CodeInvalidIndex},
	{ErrorLimitExceeded, CodeLimitExceeded},
	{ErrorCapacityReached, CodeLimitExceeded},
}

// CodeOf returns the numeric failure code for err. Unknown errors map to
// CodeInternal; a nil error maps to 0.
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	for _, e := range codeTable {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return CodeInternal
}

// Message returns the human-readable text for a numeric code.
func Message(code int) string {
	if m, ok := codeMessages[code]; ok {
		return m
	}
	return "Unknown error"
}
