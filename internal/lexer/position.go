// Package lexer turns expression text into a stream of tokens for the parser.
package lexer

// Position represents a location in the expression text.
//
// Position is a small value type; the zero value means "no position".
type Position struct {
	// Line is the 1-based line number. Expressions are usually a single line,
	// but newlines are accepted as whitespace and counted.
	Line int

	// Column is the 1-based byte column within the line.
	Column int

	// Offset is the 0-based byte offset from the start of the input, so that
	// source[offset:offset+length] is the token text.
	Offset int
}

// String returns "line:column", e.g. "1:7".
func (p Position) String() string {
	return itoa(p.Line) + ":" + itoa(p.Column)
}

// IsValid returns true if the position is valid (has a non-zero line number).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before returns true if this position comes before the other position.
// Positions are compared by offset.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After returns true if this position comes after the other position.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// itoa converts small non-negative integers (lines and columns) to decimal.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := false
	if n < 0 {
		negative = true
		n = -n
	}

	// Build the number in reverse
	buf := make([]byte, 0, 12)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}

	if negative {
		buf = append(buf, '-')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Span represents a range of the input from Start to End (End exclusive by
// offset).
type Span struct {
	Start Position
	End   Position
}

// String returns "line:startCol-endCol" for single-line spans and
// "line:col-line:col" otherwise.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return itoa(s.Start.Line) + ":" + itoa(s.Start.Column) + "-" + itoa(s.End.Column)
	}
	return s.Start.String() + "-" + s.End.String()
}

// IsValid returns true if both positions are valid and ordered correctly.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// Contains returns true if the given position is within this span (inclusive).
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && !pos.After(s.End)
}

// Length returns the number of bytes covered by this span.
func (s Span) Length() int {
	if !s.IsValid() {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}
