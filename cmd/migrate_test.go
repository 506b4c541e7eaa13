package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-catalog/pkg/config"
	apperrors "github.com/killallgit/podcast-catalog/pkg/errors"
)

func TestMigrateCommand(t *testing.T) {
	t.Setenv("CATALOG_DATABASE_PATH", filepath.Join(t.TempDir(), "catalog.db"))

	out, err := execute(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "podcasts")
	assert.Contains(t, out, "pending")

	out, err = execute(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated 2 models")

	out, err = execute(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "episodes")
	assert.NotContains(t, out, "pending")
}

func TestMigrateHelp(t *testing.T) {
	out, err := execute(t, "migrate", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "status")
}

func TestOpenDatabaseErrorCodes(t *testing.T) {
	_, err := openDatabase(config.DatabaseConfig{Driver: "postgres"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDatabaseConnection, apperrors.GetCode(err))

	db, err := openDatabase(config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "catalog.db")})
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
