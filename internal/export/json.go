package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/playtime/internal"
)

// JSONExporter exports an app and its sessions as pretty-printed JSON
type JSONExporter struct{}

// Export exports an app to JSON format
func (e *JSONExporter) Export(app *internal.App, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(app)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
