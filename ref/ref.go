// Package ref parses and formats spreadsheet cell references. Both A1 style
// ("B3", "$C$5") and R1C1 style ("R3C2") addresses are supported. Columns and
// rows are 1-based throughout, matching how SpreadsheetML serializes them.
package ref

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a single cell address. Column and Row are 1-based. The lock
// flags record "$" absolute markers from A1-style input.
type Coordinate struct {
	Column uint32
	Row    uint32

	ColumnLocked bool
	RowLocked    bool
}

// ParseCoordinate parses an A1-style ("B3", "$B$3") or R1C1-style ("R3C2")
// cell address.
func ParseCoordinate(s string) (Coordinate, error) {
	if s == "" {
		return Coordinate{}, fmt.Errorf("empty cell reference")
	}
	if c, ok := parseR1C1(s); ok {
		return c, nil
	}
	return parseA1(s)
}

func parseA1(s string) (Coordinate, error) {
	var c Coordinate
	i := 0

	if i < len(s) && s[i] == '$' {
		c.ColumnLocked = true
		i++
	}
	colStart := i
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == colStart {
		return Coordinate{}, fmt.Errorf("invalid cell reference %q: no column letters", s)
	}
	col, ok := ColumnNumber(s[colStart:i])
	if !ok {
		return Coordinate{}, fmt.Errorf("invalid column in %q", s)
	}
	c.Column = col

	if i < len(s) && s[i] == '$' {
		c.RowLocked = true
		i++
	}
	if i == len(s) {
		return Coordinate{}, fmt.Errorf("invalid cell reference %q: no row number", s)
	}
	row, err := strconv.ParseUint(s[i:], 10, 32)
	if err != nil || row < 1 {
		return Coordinate{}, fmt.Errorf("invalid row in %q", s)
	}
	c.Row = uint32(row)
	return c, nil
}

// parseR1C1 recognizes absolute R1C1 addresses. Anything else, including the
// bracketed relative form, is left for the A1 parser to reject.
func parseR1C1(s string) (Coordinate, bool) {
	if len(s) < 4 || (s[0] != 'R' && s[0] != 'r') {
		return Coordinate{}, false
	}
	ci := strings.IndexAny(s[1:], "Cc")
	if ci < 1 {
		return Coordinate{}, false
	}
	ci++ // index in s

	row, err := strconv.ParseUint(s[1:ci], 10, 32)
	if err != nil || row < 1 {
		return Coordinate{}, false
	}
	col, err := strconv.ParseUint(s[ci+1:], 10, 32)
	if err != nil || col < 1 {
		return Coordinate{}, false
	}
	return Coordinate{Column: uint32(col), Row: uint32(row)}, true
}

// String renders the coordinate in A1 style, including any absolute markers.
func (c Coordinate) String() string {
	var b strings.Builder
	if c.ColumnLocked {
		b.WriteByte('$')
	}
	b.WriteString(ColumnName(c.Column))
	if c.RowLocked {
		b.WriteByte('$')
	}
	b.WriteString(strconv.FormatUint(uint64(c.Row), 10))
	return b.String()
}

// R1C1 renders the coordinate in absolute R1C1 style.
func (c Coordinate) R1C1() string {
	return fmt.Sprintf("R%dC%d", c.Row, c.Column)
}

// ColumnNumber converts column letters to a 1-based column number.
// "A" is 1, "Z" is 26, "AA" is 27.
func ColumnNumber(name string) (uint32, bool) {
	if name == "" {
		return 0, false
	}
	var n uint32
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		n = n*26 + uint32(ch-'A') + 1
	}
	return n, true
}

// ColumnName converts a 1-based column number to column letters.
// 1 is "A", 26 is "Z", 27 is "AA".
func ColumnName(n uint32) string {
	if n == 0 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// Dimension is a rectangular cell range. Start and End are inclusive; a
// single-cell range has Start == End.
type Dimension struct {
	Start Coordinate
	End   Coordinate
}

// ParseDimension parses a range reference like "A1:D10". A bare cell address
// yields a single-cell range.
func ParseDimension(s string) (Dimension, error) {
	start, end, found := strings.Cut(s, ":")

	sc, err := ParseCoordinate(start)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if !found {
		return Dimension{Start: sc, End: sc}, nil
	}
	ec, err := ParseCoordinate(end)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return Dimension{Start: sc, End: ec}, nil
}

// String renders the range in A1 style. Single-cell ranges render as a bare
// address.
func (d Dimension) String() string {
	if d.Start.Column == d.End.Column && d.Start.Row == d.End.Row {
		return d.Start.String()
	}
	return d.Start.String() + ":" + d.End.String()
}

// Columns returns the number of columns the range spans.
func (d Dimension) Columns() uint32 {
	if d.End.Column < d.Start.Column {
		return 0
	}
	return d.End.Column - d.Start.Column + 1
}

// Rows returns the number of rows the range spans.
func (d Dimension) Rows() uint32 {
	if d.End.Row < d.Start.Row {
		return 0
	}
	return d.End.Row - d.Start.Row + 1
}

// Contains reports whether the coordinate falls inside the range.
func (d Dimension) Contains(c Coordinate) bool {
	return c.Column >= d.Start.Column && c.Column <= d.End.Column &&
		c.Row >= d.Start.Row && c.Row <= d.End.Row
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
