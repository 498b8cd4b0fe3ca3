package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"not found", ErrorNotFound, CodeNotFound},
		{"wrapped not found", fmt.Errorf("get switch: %w", ErrorNotFound), CodeNotFound},
		{"no beneficiaries", ErrorNoBeneficiaries, CodeNotFound},
		{"duplicate", ErrorAlreadyExists, CodeAlreadyExists},
		{"interval", ErrorInvalidInterval, CodeInvalidInput},
		{"grace", ErrorInvalidGrace, CodeInvalidInput},
		{"insufficient", ErrorInsufficientBalance, CodeInvalidInput},
		{"fixed allocation", ErrorInvalidAllocation, CodeInvalidInput},
		{"too many fixed", ErrorTooManyBeneficiaries, CodeInvalidInput},
		{"dynamic percentage", ErrorInvalidPercentage, CodeInvalidPercentage},
		{"dynamic index", ErrorInvalidIndex, CodeInvalidIndex},
		{"not ready", ErrorNotReady, CodeForbidden},
		{"triggered", ErrorTriggered, CodeForbidden},
		{"not guardian", ErrorNotGuardian, CodeForbidden},
		{"not holder", ErrorNotHolder, CodeForbidden},
		{"frozen", ErrorFrozen, CodeAlreadyTriggered},
		{"limit", ErrorLimitExceeded, CodeLimitExceeded},
		{"capacity", ErrorCapacityReached, CodeLimitExceeded},
		{"expired token", ErrTokenExpired, CodeUnauthorized},
		{"unknown", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Resource already exists.", Message(CodeAlreadyExists))
	assert.Equal(t, "Switch has already been triggered.", Message(CodeAlreadyTriggered))
	assert.Equal(t, "Unknown error", Message(999))
}
