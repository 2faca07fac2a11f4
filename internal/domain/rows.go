package domain

// Rows is the structured form of CSV text: one entry per input line, each
// holding the line's fields in input order.
type Rows [][]string
