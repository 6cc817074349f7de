package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesSchema(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var version int
	err = database.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	// Both tables must exist
	_, err = database.Exec("SELECT COUNT(*) FROM installs")
	assert.NoError(t, err)
	_, err = database.Exec("SELECT COUNT(*) FROM workspace_features")
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.migrate())
	require.NoError(t, database.migrate())
}
