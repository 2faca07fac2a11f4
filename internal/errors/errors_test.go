package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestFileAccessError(t *testing.T) {
	err := xerrors.Errorf("failed to load data: %w", NewFileAccessError("data.csv", fs.ErrNotExist))

	require.ErrorIs(t, err, ErrFileAccess)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.False(t, stderrors.Is(err, ErrParse))
	require.ErrorContains(t, err, "data.csv")

	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, "data.csv", accessErr.Path)
}

func TestParseError(t *testing.T) {
	cause := stderrors.New("invalid character")
	err := xerrors.Errorf("failed to process: %w", NewParseError(7, cause))

	require.ErrorIs(t, err, ErrParse)
	require.ErrorIs(t, err, cause)
	require.False(t, stderrors.Is(err, ErrFileAccess))
	require.ErrorContains(t, err, "offset 7")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, int64(7), parseErr.Offset)
}
