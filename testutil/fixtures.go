package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// SampleConfigYAML is a config file with one played and one unplayed app.
// The second doom session carries only a UTC offset.
const SampleConfigYAML = `apps:
  - name: doom
    exe: /usr/games/doom
    sessions:
      - timestamp: 2024-08-10T23:14:00-04:00[America/New_York]
        duration: PT2H4M
      - timestamp: "2024-08-12T09:30:00+02:00"
        duration: PT30M1S
  - name: quake
    exe: /usr/games/quake
    sessions: []
`

// WriteConfigFixture writes content as config.yaml inside dir
func WriteConfigFixture(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}
	return path
}

// CreateScript writes an executable shell script that runs body and returns
// its path. Tests using it are skipped on Windows.
func CreateScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("Failed to write script %s: %v", path, err)
	}
	return path
}
