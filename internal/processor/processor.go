package processor

import (
	"path/filepath"
	"strings"

	"github.com/formulatehq/format-processor/internal/csv"
	"github.com/formulatehq/format-processor/internal/json"
	"golang.org/x/xerrors"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Processor turns raw text into structured data. Implementations must be
// pure: the same input always yields a deep-equal result.
type Processor interface {
	Process(data string) (any, error)
}

var (
	_ Processor = (*csv.Processor)(nil)
	_ Processor = (*json.Processor)(nil)
)

// New returns the processor for format.
func New(format Format) (Processor, error) {
	switch format {
	case FormatCSV:
		return csv.NewProcessor(), nil
	case FormatJSON:
		return json.NewProcessor(), nil
	default:
		return nil, xerrors.Errorf("unsupported format: %q", format)
	}
}

// FormatForPath infers the format from the file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", xerrors.Errorf("unsupported file extension %q for %s", ext, path)
	}
}

// ForPath returns the processor matching the extension of path.
func ForPath(path string) (Processor, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return New(format)
}
