package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/playtime/internal"
	"github.com/iksnae/playtime/testutil"
	"gopkg.in/yaml.v3"
)

func testApps() []*internal.App {
	config := internal.CreateTestConfig()
	return []*internal.App{&config.Apps[0], &config.Apps[1]}
}

func TestJSONExporter_Export(t *testing.T) {
	for _, app := range testApps() {
		t.Run(app.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&JSONExporter{}).Export(app, &buf); err != nil {
				t.Fatalf("JSONExporter.Export() error = %v", err)
			}

			var decoded internal.App
			testutil.JSONUnmarshal(t, buf.Bytes(), &decoded)

			if decoded.Name != app.Name || decoded.Exe != app.Exe {
				t.Errorf("decoded app = %q/%q, want %q/%q", decoded.Name, decoded.Exe, app.Name, app.Exe)
			}
			if len(decoded.Sessions) != len(app.Sessions) {
				t.Fatalf("decoded %d sessions, want %d", len(decoded.Sessions), len(app.Sessions))
			}
			for i := range app.Sessions {
				if !decoded.Sessions[i].Timestamp.Equal(app.Sessions[i].Timestamp) {
					t.Errorf("session %d timestamp = %s, want %s", i, decoded.Sessions[i].Timestamp, app.Sessions[i].Timestamp)
				}
				if decoded.Sessions[i].Duration != app.Sessions[i].Duration {
					t.Errorf("session %d duration = %s, want %s", i, decoded.Sessions[i].Duration, app.Sessions[i].Duration)
				}
			}
			if !strings.Contains(buf.String(), "  ") {
				t.Error("Output should be pretty-printed with indentation")
			}
		})
	}
}

func TestJSONLExporter_Export(t *testing.T) {
	app := testApps()[0]

	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(app, &buf); err != nil {
		t.Fatalf("JSONLExporter.Export() error = %v", err)
	}

	var lines []sessionLine
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var line sessionLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			t.Fatalf("line %q is not valid JSON: %v", scanner.Text(), err)
		}
		lines = append(lines, line)
	}

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].App != "doom" || lines[0].Duration != "PT2H4M" || lines[0].DurationSeconds != 7440 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[0].Timestamp != "2024-08-10T23:14:00-04:00[America/New_York]" {
		t.Errorf("first timestamp = %q", lines[0].Timestamp)
	}
}

func TestJSONLExporter_EmptyApp(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONLExporter{}).Export(testApps()[1], &buf); err != nil {
		t.Fatalf("JSONLExporter.Export() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for an app without sessions, got %q", buf.String())
	}
}

func TestYAMLExporter_Export(t *testing.T) {
	app := testApps()[0]

	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(app, &buf); err != nil {
		t.Fatalf("YAMLExporter.Export() error = %v", err)
	}

	var decoded internal.App
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v\nOutput: %s", err, buf.String())
	}
	if decoded.Name != "doom" || len(decoded.Sessions) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(buf.String(), "duration: PT45M30S") {
		t.Errorf("Output should contain ISO 8601 durations:\n%s", buf.String())
	}
}

func TestMarkdownExporter_Export(t *testing.T) {
	tests := []struct {
		name     string
		app      *internal.App
		contains []string
	}{
		{
			name: "with sessions",
			app:  testApps()[0],
			contains: []string{
				"# doom",
				"**Sessions:** 2",
				"**Recorded total:** 02h 49m 30s",
				"| 1 | 2024-08-10 at 23:14 EDT | 02h 04m 00s |",
				"| 2 | 2024-08-12 at 09:30 CEST | 00h 45m 30s |",
			},
		},
		{
			name:     "without sessions",
			app:      testApps()[1],
			contains: []string{"# quake", "_No sessions recorded._"},
		},
		{
			name:     "escapes name",
			app:      &internal.App{Name: "a|b_c", Exe: "/bin/x", Sessions: []internal.Session{}},
			contains: []string{`# a\|b\_c`},
		},
		{
			name:     "plain executable",
			app:      &internal.App{Name: "x", Exe: "/usr/games/doom", Sessions: []internal.Session{}},
			contains: []string{"**Executable:** `/usr/games/doom`  \n"},
		},
		{
			name:     "executable with backticks",
			app:      &internal.App{Name: "x", Exe: "run`game``x", Sessions: []internal.Session{}},
			contains: []string{"**Executable:** ```run`game``x```  \n"},
		},
		{
			name:     "executable ending in backtick",
			app:      &internal.App{Name: "x", Exe: "game`", Sessions: []internal.Session{}},
			contains: []string{"**Executable:** `` game` ``  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&MarkdownExporter{}).Export(tt.app, &buf); err != nil {
				t.Fatalf("MarkdownExporter.Export() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Output should contain %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestSQLiteExporter_Export(t *testing.T) {
	app := testApps()[0]

	var buf bytes.Buffer
	if err := (&SQLiteExporter{}).Export(app, &buf); err != nil {
		t.Fatalf("SQLiteExporter.Export() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("SQLite format 3\x00")) {
		t.Fatal("Output is not a SQLite database image")
	}

	db := testutil.OpenSQLiteBytes(t, buf.Bytes())

	if got := testutil.CountRows(t, db, "apps"); got != 1 {
		t.Errorf("apps rows = %d, want 1", got)
	}
	if got := testutil.CountRows(t, db, "sessions"); got != 2 {
		t.Errorf("sessions rows = %d, want 2", got)
	}

	var total float64
	if err := db.QueryRow("SELECT SUM(duration_seconds) FROM sessions WHERE app = ?", "doom").Scan(&total); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if total != 2*3600+49*60+30 {
		t.Errorf("total seconds = %v, want %v", total, 2*3600+49*60+30)
	}

	var zone string
	if err := db.QueryRow("SELECT zone FROM sessions WHERE seq = 1").Scan(&zone); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if zone != "America/New_York" {
		t.Errorf("zone = %q, want America/New_York", zone)
	}
}

func TestExtensions(t *testing.T) {
	tests := []struct {
		exporter Exporter
		want     string
	}{
		{&JSONExporter{}, "json"},
		{&JSONLExporter{}, "jsonl"},
		{&YAMLExporter{}, "yaml"},
		{&MarkdownExporter{}, "md"},
		{&SQLiteExporter{}, "db"},
	}

	for _, tt := range tests {
		if got := tt.exporter.Extension(); got != tt.want {
			t.Errorf("%T.Extension() = %q, want %q", tt.exporter, got, tt.want)
		}
	}
}
