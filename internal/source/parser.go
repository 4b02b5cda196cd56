// Package source reads chart input and parses it into a model.Series.
//
// Each line holds 1-4 whitespace-separated fields in one of four shapes:
//
//	value
//	value label
//	value comparison
//	value comparison label
//
// Values are non-negative integers. A label may span several fields but its
// last field must not be an integer.
package source

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/relchart/internal/model"
)

const maxFields = 4

// ParseError describes a malformed input line. Line is 1-based.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parse converts input lines to a series. The first malformed line aborts
// parsing. Whether the series carries comparison values is decided by the
// first line and every later line must agree.
func Parse(lines []string) (model.Series, error) {
	series := make(model.Series, 0, len(lines))
	for i, line := range lines {
		rec, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Reason: err.Error()}
		}
		if i > 0 && rec.HasComparison != series[0].HasComparison {
			reason := "missing comparison value, line 1 has one"
			if rec.HasComparison {
				reason = "unexpected comparison value, line 1 has none"
			}
			return nil, &ParseError{Line: i + 1, Reason: reason}
		}
		series = append(series, rec)
	}
	return series, nil
}

func parseLine(line string) (model.Record, error) {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return model.Record{}, fmt.Errorf("empty line")
	case len(fields) > maxFields:
		return model.Record{}, fmt.Errorf("found %d fields, expected at most %d", len(fields), maxFields)
	}

	var rec model.Record
	if !isInteger(fields[0]) {
		return rec, fmt.Errorf("first field %q is not an integer", fields[0])
	}
	v, err := parseValue(fields[0])
	if err != nil {
		return rec, err
	}
	rec.Value = v

	rest := fields[1:]
	if len(rest) > 0 && isInteger(rest[0]) {
		c, err := parseValue(rest[0])
		if err != nil {
			return rec, fmt.Errorf("comparison: %w", err)
		}
		rec.Comparison = c
		rec.HasComparison = true
		rest = rest[1:]
	}

	if len(rest) > 0 {
		if last := rest[len(rest)-1]; isInteger(last) {
			return rec, fmt.Errorf("found integer %q where a label was expected", last)
		}
		rec.Label = strings.Join(rest, " ")
	}
	return rec, nil
}

func parseValue(s string) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("value %s is negative", s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value %s exceeds %d", s, uint64(math.MaxUint32))
	}
	return v, nil
}

// isInteger reports whether s is an optionally negative run of ASCII digits.
func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
