package gamedata

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column converts one tab-separated cell into a field of T
type Column[T any] struct {
	Name string
	Set  func(row *T, text string) error
}

// ConvertError describes a cell that could not be converted. The field keeps
// its zero value.
type ConvertError struct {
	Line   int // 1-based
	Column string
	Text   string
	Err    error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("line %d column %s: cannot convert %q: %v", e.Line, e.Column, e.Text, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// ConvertText turns tab-delimited lines into rows of T. Cells are matched to
// columns by position; extra cells are ignored and missing cells leave the
// field at its zero value. Every line produces a row. Cells that fail to
// convert are reported in skipped and do not stop the conversion.
func ConvertText[T any](text string, columns []Column[T]) (rows []T, skipped []*ConvertError) {
	rows = []T{}
	reader := bufio.NewReader(strings.NewReader(text))

	line := 0
	for {
		raw, err := reader.ReadString('\n')
		if raw == "" && err != nil {
			break
		}
		line++
		raw = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		cells := strings.Split(raw, "\t")

		var row T
		for i := 0; i < len(cells) && i < len(columns); i++ {
			if err := columns[i].Set(&row, cells[i]); err != nil {
				skipped = append(skipped, &ConvertError{Line: line, Column: columns[i].Name, Text: cells[i], Err: err})
			}
		}
		rows = append(rows, row)
	}

	return rows, skipped
}

// NewColumn builds a column from a parser and a field accessor
func NewColumn[T, V any](name string, parse func(string) (V, error), field func(row *T) *V) Column[T] {
	return Column[T]{
		Name: name,
		Set: func(row *T, text string) error {
			v, err := parse(text)
			if err != nil {
				return err
			}
			*field(row) = v
			return nil
		},
	}
}

// ParseString returns the cell unchanged
func ParseString(s string) (string, error) {
	return s, nil
}

// ParseInt16 parses a base 10 int16
func ParseInt16(s string) (int16, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	return int16(v), err
}

// ParseInt32 parses a base 10 int32
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	return int32(v), err
}

// ParseInt64 parses a base 10 int64
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseFloat32 parses a float32
func ParseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(v), err
}

// ParseFloat64 parses a float64
func ParseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ParseBool treats TRUE in any case as true and everything else as false
func ParseBool(s string) (bool, error) {
	return strings.EqualFold(strings.TrimSpace(s), "true"), nil
}

// ParseDate parses a YYYYMMDD date in UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse("20060102", strings.TrimSpace(s))
}
