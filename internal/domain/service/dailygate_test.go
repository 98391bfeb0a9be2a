package service

import (
	"context"
	"testing"

	"github.com/diegoclair/ops-reminder-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDailyGate_OncePerDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, mocks.NewMockNotifier(ctrl), scenarioStart)
	gate := env.services.Gate
	ctx := context.Background()

	key := GateKey{Family: FamilyDailyReset, Tenant: testTenant, Slot: "0"}

	ok, err := gate.CanRun(ctx, key, "2025-03-01")
	require.NoError(t, err)
	assert.True(t, ok, "never run")

	require.NoError(t, gate.MarkComplete(ctx, key, "2025-03-01"))

	ok, err = gate.CanRun(ctx, key, "2025-03-01")
	require.NoError(t, err)
	assert.False(t, ok, "already ran today")

	ok, err = gate.CanRun(ctx, key, "2025-03-02")
	require.NoError(t, err)
	assert.True(t, ok, "new date")
}

func TestDailyGate_TryRunClaimsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := newTestEnv(t, mocks.NewMockNotifier(ctrl), scenarioStart)
	gate := env.services.Gate
	ctx := context.Background()

	key := GateKey{Family: FamilyDuel, Tenant: testTenant, Slot: "19"}

	ok, err := gate.TryRun(ctx, key, "2025-03-01")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gate.TryRun(ctx, key, "2025-03-01")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gate.TryRun(ctx, key, "2025-03-02")
	require.NoError(t, err)
	assert.True(t, ok)

	other := GateKey{Family: FamilyDuel, Tenant: "T2", Slot: "19"}
	ok, err = gate.TryRun(ctx, other, "2025-03-01")
	require.NoError(t, err)
	assert.True(t, ok, "tenants are gated independently")
}

func TestGateKey_String(t *testing.T) {
	tests := []struct {
		name string
		a, b GateKey
	}{
		{
			name: "Should not collide when a separator moves between fields",
			a:    GateKey{Family: "reset", Tenant: "T1/0", Slot: ""},
			b:    GateKey{Family: "reset", Tenant: "T1", Slot: "0"},
		},
		{
			name: "Should not collide when an escape sequence is typed literally",
			a:    GateKey{Family: "reset", Tenant: "T%2F1", Slot: "0"},
			b:    GateKey{Family: "reset", Tenant: "T/1", Slot: "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, tt.a.String(), tt.b.String())
		})
	}

	assert.Equal(t, "duel/T1/19", GateKey{Family: "duel", Tenant: "T1", Slot: "19"}.String())
}
