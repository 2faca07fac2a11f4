package json

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"strings"

	"github.com/formulatehq/format-processor/internal/domain"
	"github.com/formulatehq/format-processor/internal/errors"
	"golang.org/x/xerrors"
)

// MAX_DEPTH caps nesting of objects and arrays, the same limit encoding/json
// applies when decoding into a value.
const MAX_DEPTH = 10000

var (
	errTooDeep         = stderrors.New("exceeded maximum nesting depth")
	errUnexpectedEnd   = stderrors.New("unexpected end of JSON input")
	errTrailingData    = stderrors.New("unexpected data after top-level value")
	errUnexpectedDelim = stderrors.New("unexpected delimiter")
)

// Processor decodes a single JSON document into a domain.Value, keeping
// object keys in the order they appear. It keeps no state between calls.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

func (p *Processor) Process(data string) (any, error) {
	return p.Parse(data)
}

// Parse fails with an errors.ParseError on the first syntax violation.
// No partial value is returned.
func (p *Processor) Parse(data string) (domain.Value, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec, 0)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse JSON document: %w", toParseError(dec, err))
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return nil, xerrors.Errorf("failed to parse JSON document: %w", toParseError(dec, err))
	}

	return value, nil
}

func decodeValue(dec *json.Decoder, depth int) (domain.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	if depth >= MAX_DEPTH {
		return nil, errTooDeep
	}

	switch delim {
	case '{':
		return decodeObject(dec, depth+1)
	case '[':
		return decodeArray(dec, depth+1)
	default:
		return nil, errUnexpectedDelim
	}
}

func decodeObject(dec *json.Decoder, depth int) (*domain.Object, error) {
	obj := domain.NewObject()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, errUnexpectedDelim
		}

		value, err := decodeValue(dec, depth)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder, depth int) ([]domain.Value, error) {
	arr := []domain.Value{}

	for dec.More() {
		value, err := decodeValue(dec, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}

	return arr, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return errUnexpectedDelim
	}
	return nil
}

func toParseError(dec *json.Decoder, err error) error {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewParseError(syntaxErr.Offset, syntaxErr)
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = errUnexpectedEnd
	}

	return errors.NewParseError(dec.InputOffset(), err)
}
