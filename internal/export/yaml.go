package export

import (
	"io"

	"github.com/iksnae/playtime/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports an app in the same YAML shape as the config file
type YAMLExporter struct{}

// Export exports an app to YAML format
func (e *YAMLExporter) Export(app *internal.App, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(app)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
