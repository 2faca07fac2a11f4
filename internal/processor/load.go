package processor

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/formulatehq/format-processor/internal/errors"
	"golang.org/x/xerrors"
)

// Load reads the whole file at path as UTF-8 text. Any failure, including
// content that is not valid UTF-8, is reported as an errors.FileAccessError.
func Load(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.NewFileAccessError(path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", errors.NewFileAccessError(path, err)
	}

	if !utf8.Valid(content) {
		return "", errors.NewFileAccessError(path, xerrors.New("content is not valid UTF-8"))
	}

	return string(content), nil
}
