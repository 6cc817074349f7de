package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestead/sitestead/internal/steadd/db"
)

func testDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestInstallStore_Upsert(t *testing.T) {
	s := NewInstallStore(testDB(t).DB)

	install, err := s.Upsert("ws-1", "crm")
	require.NoError(t, err)
	assert.True(t, install.Enabled)
	assert.Equal(t, "ws-1", install.WorkspaceID)
	assert.Equal(t, "crm", install.ItemID)
	assert.NotEmpty(t, install.ID)

	// Disable, then reinstall: the same row flips back to enabled
	require.NoError(t, s.SetEnabled("ws-1", "crm", false))

	again, err := s.Upsert("ws-1", "crm")
	require.NoError(t, err)
	assert.True(t, again.Enabled)
	assert.Equal(t, install.ID, again.ID)
}

func TestInstallStore_SetEnabled(t *testing.T) {
	s := NewInstallStore(testDB(t).DB)

	_, err := s.Upsert("ws-1", "crm")
	require.NoError(t, err)

	require.NoError(t, s.SetEnabled("ws-1", "crm", false))

	install, err := s.Get("ws-1", "crm")
	require.NoError(t, err)
	assert.False(t, install.Enabled)

	err = s.SetEnabled("ws-1", "missing", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInstallStore_ListEnabledItemIDs(t *testing.T) {
	s := NewInstallStore(testDB(t).DB)

	_, err := s.Upsert("ws-1", "crm")
	require.NoError(t, err)
	_, err = s.Upsert("ws-1", "tickets")
	require.NoError(t, err)
	_, err = s.Upsert("ws-2", "crm")
	require.NoError(t, err)
	require.NoError(t, s.SetEnabled("ws-1", "tickets", false))

	ids, err := s.ListEnabledItemIDs("ws-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"crm": true}, ids)

	installs, err := s.ListByWorkspace("ws-1")
	require.NoError(t, err)
	assert.Len(t, installs, 2, "disabled installs are retained")
}

func TestFeatureStore_ReplaceAndList(t *testing.T) {
	s := NewFeatureStore(testDB(t).DB)

	require.NoError(t, s.Replace("ws-1", []string{"crm", "apps.tickets"}))

	features, err := s.List("ws-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"apps.tickets", "crm"}, features)

	// Replace swaps the whole set
	require.NoError(t, s.Replace("ws-1", []string{"crm"}))

	features, err = s.List("ws-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crm"}, features)

	// Empty replacement clears the workspace
	require.NoError(t, s.Replace("ws-1", nil))

	features, err = s.List("ws-1")
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestFeatureStore_SkipsEmptyKeys(t *testing.T) {
	s := NewFeatureStore(testDB(t).DB)

	require.NoError(t, s.Replace("ws-1", []string{"", "crm", ""}))

	features, err := s.List("ws-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crm"}, features)
}
