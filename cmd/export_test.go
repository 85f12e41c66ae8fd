package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/playtime/internal"
	"github.com/iksnae/playtime/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_InvalidFormat(t *testing.T) {
	dir := seedConfig(t, internal.CreateTestConfig())
	out := filepath.Join(testutil.CreateTempDir(t), "exports")

	_, err := executeCommand(t, dir, "export", "--format", "invalid", "--out", out)
	assert.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for an unsupported format")
}

func TestExportCommand_AllApps(t *testing.T) {
	dir := seedConfig(t, internal.CreateTestConfig())
	out := filepath.Join(testutil.CreateTempDir(t), "exports")

	stdout, err := executeCommand(t, dir, "export", "--format", "json", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Export complete: 2 app(s) exported to "+out)

	var doom struct {
		Name     string `json:"name"`
		Sessions []struct {
			Timestamp string `json:"timestamp"`
			Duration  string `json:"duration"`
		} `json:"sessions"`
	}
	testutil.JSONUnmarshal(t, []byte(testutil.ReadFile(t, filepath.Join(out, "doom.json"))), &doom)
	assert.Equal(t, "doom", doom.Name)
	require.Len(t, doom.Sessions, 2)
	assert.Equal(t, "PT2H4M", doom.Sessions[0].Duration)

	_, err = os.Stat(filepath.Join(out, "quake.json"))
	assert.NoError(t, err)
}

func TestExportCommand_SingleAppSQLite(t *testing.T) {
	dir := seedConfig(t, internal.CreateTestConfig())
	out := testutil.CreateTempDir(t)

	_, err := executeCommand(t, dir, "export", "doom", "-f", "sqlite", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "doom.db"))
	require.NoError(t, err)
	db := testutil.OpenSQLiteBytes(t, data)
	assert.Equal(t, 1, testutil.CountRows(t, db, "apps"))
	assert.Equal(t, 2, testutil.CountRows(t, db, "sessions"))

	_, err = os.Stat(filepath.Join(out, "quake.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportCommand_DefaultMarkdown(t *testing.T) {
	dir := seedConfig(t, internal.CreateTestConfig())
	out := testutil.CreateTempDir(t)

	_, err := executeCommand(t, dir, "export", "quake", "--out", out)
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, filepath.Join(out, "quake.md")), "quake")
}

func TestExportCommand_MissingApp(t *testing.T) {
	dir := seedConfig(t, internal.CreateTestConfig())

	_, err := executeCommand(t, dir, "export", "tetris", "--out", testutil.CreateTempDir(t))
	assert.Error(t, err)
}

func TestExportCommand_CollidingFileNames(t *testing.T) {
	config := &internal.Config{}
	for _, name := range []string{"a/b", "a_b"} {
		_, err := config.Add(name, "/usr/games/"+name)
		require.NoError(t, err)
	}
	dir := seedConfig(t, config)
	out := testutil.CreateTempDir(t)

	stdout, err := executeCommand(t, dir, "export", "--format", "json", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Export complete: 2 app(s) exported")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	for file, want := range map[string]string{"a_b.json": "a/b", "a_b-2.json": "a_b"} {
		var app struct {
			Name string `json:"name"`
		}
		testutil.JSONUnmarshal(t, []byte(testutil.ReadFile(t, filepath.Join(out, file))), &app)
		assert.Equal(t, want, app.Name, "contents of %s", file)
	}
}

func TestUniqueFileName(t *testing.T) {
	used := map[string]bool{}

	assert.Equal(t, "doom.md", uniqueFileName(used, "doom", "md"))
	assert.Equal(t, "Doom-2.md", uniqueFileName(used, "Doom", "md"))
	assert.Equal(t, "doom-3.md", uniqueFileName(used, "doom", "md"))
	assert.Equal(t, "doom-2-2.md", uniqueFileName(used, "doom-2", "md"))
	assert.Equal(t, "quake.md", uniqueFileName(used, "quake", "md"))
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		app  string
		want string
	}{
		{name: "plain", app: "doom", want: "doom.md"},
		{name: "spaces kept", app: "Baldur's Gate 3", want: "Baldur's Gate 3.md"},
		{name: "separators replaced", app: "half/life:2", want: "half_life_2.md"},
		{name: "dot names", app: "..", want: "app.md"},
		{name: "blank", app: "  ", want: "app.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportFileName(tt.app, "md"))
		})
	}
}
