package writer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Supported score file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for formats other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

type Writer interface {
	Write(scores map[string]int) error
}

// FileWriter writes the wallet score mapping to a single file. Both formats
// marshal map keys in sorted order, so output is deterministic run to run.
type FileWriter struct {
	Path   string
	Format string
}

func NewFileWriter(path, format string) *FileWriter {
	return &FileWriter{Path: path, Format: format}
}

// Write marshals the scores in the configured format and writes them to the
// configured path.
func (w *FileWriter) Write(scores map[string]int) error {
	var (
		data []byte
		err  error
	)

	switch w.Format {
	case FormatJSON:
		data, err = json.MarshalIndent(scores, "", "    ")
	case FormatYAML, "yml":
		data, err = yaml.Marshal(scores)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, w.Format)
	}
	if err != nil {
		return fmt.Errorf("marshaling scores: %w", err)
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing scores file: %w", err)
	}

	log.Infof("wrote %d wallet scores to %s", len(scores), w.Path)
	return nil
}
