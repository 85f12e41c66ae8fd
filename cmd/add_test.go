package cmd

import (
	"errors"
	"testing"

	"github.com/iksnae/playtime/internal"
	"github.com/iksnae/playtime/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	out, err := executeCommand(t, dir, "add", "doom", "/usr/games/doom")
	require.NoError(t, err)
	assert.Contains(t, out, "added doom to the config file")

	config := readConfig(t, dir)
	app, err := config.Find("doom")
	require.NoError(t, err)
	assert.Equal(t, "/usr/games/doom", app.Exe)
	assert.Empty(t, app.Sessions)
}

func TestAddCommand_Duplicate(t *testing.T) {
	dir := seedConfig(t, internal.CreateTestConfig())
	before := testutil.ReadFile(t, internal.NewStore(dir).Path())

	_, err := executeCommand(t, dir, "add", "doom", "/elsewhere/doom")

	var exists *internal.AppExistsError
	require.True(t, errors.As(err, &exists))
	assert.EqualError(t, err, "an app with this name already exists: doom")
	assert.Equal(t, before, testutil.ReadFile(t, internal.NewStore(dir).Path()))
}

func TestAddCommand_Args(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	_, err := executeCommand(t, dir, "add", "doom")
	assert.Error(t, err)

	_, err = executeCommand(t, dir, "add", "doom", "/usr/games/doom", "extra")
	assert.Error(t, err)

	assert.False(t, internal.NewStore(dir).Exists())
}
