package service

import (
	"context"
	"testing"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func Test_taskRegistry(t *testing.T) {
	r := newTaskRegistry()
	key := entity.MissionKey{TenantID: testTenant, Codename: "ALPHA"}

	firstCtx, firstCancel := context.WithCancel(context.Background())
	firstID := r.add(key, firstCancel)
	assert.True(t, r.has(key))
	assert.Equal(t, 1, r.len())

	secondCtx, secondCancel := context.WithCancel(context.Background())
	secondID := r.add(key, secondCancel)
	assert.Error(t, firstCtx.Err(), "re-adding a key cancels the previous task")
	assert.Equal(t, 1, r.len())

	// a stale task finishing must not drop the newer handle
	r.done(key, firstID)
	assert.True(t, r.has(key))

	assert.True(t, r.cancel(key))
	assert.Error(t, secondCtx.Err())
	assert.False(t, r.has(key))
	assert.False(t, r.cancel(key), "nothing left to cancel")

	r.done(key, secondID)
	assert.Equal(t, 0, r.len())

	otherCtx, otherCancel := context.WithCancel(context.Background())
	r.add(entity.MissionKey{TenantID: "T2", Codename: "ALPHA"}, otherCancel)
	r.reset()
	assert.Equal(t, 0, r.len())
	assert.Error(t, otherCtx.Err())
}
