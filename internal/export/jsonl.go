package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/playtime/internal"
)

// JSONLExporter exports sessions in JSONL format (one session per line)
type JSONLExporter struct{}

type sessionLine struct {
	App             string  `json:"app"`
	Timestamp       string  `json:"timestamp"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Export exports an app's sessions to JSONL format
func (e *JSONLExporter) Export(app *internal.App, w io.Writer) error {
	enc := json.NewEncoder(w)

	for i, session := range app.Sessions {
		d, err := session.Duration.Duration()
		if err != nil {
			return fmt.Errorf("failed to convert session %d: %w", i, err)
		}

		line := sessionLine{
			App:             app.Name,
			Timestamp:       session.Timestamp.String(),
			Duration:        session.Duration.String(),
			DurationSeconds: d.Seconds(),
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("failed to encode session %d: %w", i, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
