package errors

import "fmt"

var (
	ErrFileAccess = &FileAccessError{}
	ErrParse      = &ParseError{}
)

// FileAccessError reports a file that could not be opened, read or decoded as UTF-8.
type FileAccessError struct {
	Path string
	Err  error
}

func NewFileAccessError(path string, err error) error {
	return &FileAccessError{
		Path: path,
		Err:  err,
	}
}

func (e *FileAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("file access error: %s", e.Path)
	}
	return fmt.Sprintf("file access error: %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func (e *FileAccessError) Is(target error) bool {
	_, ok := target.(*FileAccessError)
	return ok
}

// ParseError reports malformed input. Offset is the byte position of the
// first syntactic violation.
type ParseError struct {
	Offset int64
	Err    error
}

func NewParseError(offset int64, err error) error {
	return &ParseError{
		Offset: offset,
		Err:    err,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}
