package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSettingsRepo(db.conn)

	settings, err := repo.Get(ctx, "T1")
	require.NoError(t, err)
	assert.Nil(t, settings, "Unset tenant has no settings")
	assert.False(t, settings.CanAnnounce())

	require.NoError(t, repo.SetAnnounceChannel(ctx, "T1", "C123"))
	require.NoError(t, repo.SetAnnounceChannel(ctx, "T2", "C456"))
	require.NoError(t, repo.SetIgnored(ctx, "T3", true))

	settings, err = repo.Get(ctx, "T1")
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "C123", settings.AnnounceChannelID)
	assert.True(t, settings.CanAnnounce())

	require.NoError(t, repo.SetIgnored(ctx, "T2", true))

	settings, err = repo.Get(ctx, "T2")
	require.NoError(t, err)
	assert.Equal(t, "C456", settings.AnnounceChannelID, "Ignoring keeps the channel")
	assert.False(t, settings.CanAnnounce())

	announcing, err := repo.ListAnnouncing(ctx)
	require.NoError(t, err)
	require.Len(t, announcing, 1)
	assert.Equal(t, "T1", announcing[0].TenantID)
}
