package csv

import (
	"strings"
	"unicode/utf8"

	"github.com/formulatehq/format-processor/internal/domain"
)

const (
	DELIMITER = ','
	QUOTE     = '"'
)

type fieldState int

const (
	startField fieldState = iota
	inField
	inQuotedField
	quoteInQuotedField
)

// Processor turns CSV text into rows. It keeps no state between calls.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Process never fails: malformed input still yields rows.
func (p *Processor) Process(data string) (any, error) {
	return p.Parse(data), nil
}

// Parse returns one row per line of data. Empty lines become rows without
// fields and ragged lines keep however many fields they have.
func (p *Processor) Parse(data string) domain.Rows {
	lines := splitLines(data)
	rows := make(domain.Rows, 0, len(lines))

	for _, line := range lines {
		rows = append(rows, parseLine(line))
	}

	return rows
}

// isLineBreak reports the single-rune line boundaries: \n, \r, \v, \f,
// the file/group/record separators, NEL and the Unicode line and
// paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitLines splits on every line boundary, treating \r\n as one. A
// trailing line break does not produce an extra empty line.
func splitLines(data string) []string {
	lines := []string{}
	start := 0

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRuneInString(data[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}

		lines = append(lines, data[start:i])
		i += size
		if r == '\r' && i < len(data) && data[i] == '\n' {
			i++
		}
		start = i
	}

	if start < len(data) {
		lines = append(lines, data[start:])
	}

	return lines
}

// parseLine splits one line into fields. Quoting is lenient: a closing
// quote followed by other characters continues the field unquoted, a quote
// inside an unquoted field is literal, and an unterminated quoted field
// runs to the end of the line.
func parseLine(line string) []string {
	if line == "" {
		return []string{}
	}

	fields := []string{}
	var field strings.Builder
	state := startField

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch state {
		case startField:
			switch c {
			case QUOTE:
				state = inQuotedField
			case DELIMITER:
				fields = append(fields, "")
			default:
				field.WriteByte(c)
				state = inField
			}
		case inField:
			if c == DELIMITER {
				fields = append(fields, field.String())
				field.Reset()
				state = startField
			} else {
				field.WriteByte(c)
			}
		case inQuotedField:
			if c == QUOTE {
				state = quoteInQuotedField
			} else {
				field.WriteByte(c)
			}
		case quoteInQuotedField:
			switch c {
			case QUOTE:
				field.WriteByte(c)
				state = inQuotedField
			case DELIMITER:
				fields = append(fields, field.String())
				field.Reset()
				state = startField
			default:
				field.WriteByte(c)
				state = inField
			}
		}
	}

	return append(fields, field.String())
}
