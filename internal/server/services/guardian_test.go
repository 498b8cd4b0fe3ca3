package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/deadswitch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveGuardian(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	require.ErrorIs(t, e.guardians.AddGuardian(ctx, "ghost", "bob"), common.ErrorNotFound)

	e.register(t, "alice")
	require.ErrorIs(t, e.guardians.AddGuardian(ctx, "alice", ""), common.ErrorInvalidInput)

	require.NoError(t, e.guardians.AddGuardian(ctx, "alice", "bob"))
	require.NoError(t, e.guardians.AddGuardian(ctx, "alice", "alice"), "self-guardianship is allowed")

	err := e.guardians.AddGuardian(ctx, "alice", "bob")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, common.CodeAlreadyExists, common.CodeOf(err))

	ok, err := e.guardians.IsGuardian(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := e.guardians.ListGuardians(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, e.guardians.RemoveGuardian(ctx, "alice", "bob"))
	require.ErrorIs(t, e.guardians.RemoveGuardian(ctx, "alice", "bob"), common.ErrorNotFound)

	ok, err = e.guardians.IsGuardian(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExtendDeadline_TenTimesThenLimit(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.register(t, "alice")
	require.NoError(t, e.guardians.AddGuardian(ctx, "alice", "bob"))

	for i := 1; i <= 10; i++ {
		sw, count, err := e.guardians.ExtendDeadline(ctx, "alice", "bob")
		require.NoError(t, err, "extension %d", i)
		assert.Equal(t, i, count)
		assert.Equal(t, int64(1000+144*i), sw.LastCheckIn)
	}

	_, _, err := e.guardians.ExtendDeadline(ctx, "alice", "bob")
	require.ErrorIs(t, err, common.ErrorLimitExceeded)
	assert.Equal(t, common.CodeLimitExceeded, common.CodeOf(err))

	n, err := e.guardians.GetExtensionCount(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	sw, err := e.switches.GetSwitch(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1000+1440), sw.LastCheckIn, "the rejected call changed nothing")
}

func TestExtendDeadline_Denied(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	_, _, err := e.guardians.ExtendDeadline(ctx, "ghost", "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)

	e.register(t, "alice")
	_, _, err = e.guardians.ExtendDeadline(ctx, "alice", "mallory")
	require.ErrorIs(t, err, common.ErrorNotGuardian)
	assert.Equal(t, common.CodeForbidden, common.CodeOf(err))

	require.NoError(t, e.guardians.AddGuardian(ctx, "alice", "bob"))
	e.clock.Advance(154)
	_, err = e.switches.TryTrigger(ctx, "alice")
	require.NoError(t, err)

	_, _, err = e.guardians.ExtendDeadline(ctx, "alice", "bob")
	require.ErrorIs(t, err, common.ErrorTriggered)
}

func TestGetExtensionCount_Unknown(t *testing.T) {
	e := newTestEnv(t)
	n, err := e.guardians.GetExtensionCount(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Zero(t, n)
}
