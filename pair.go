package milkrun

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMissingSegment is returned when a pair expression has fewer than two segments.
	ErrMissingSegment = errors.New("missing segment")
	// ErrTooManyParts is returned when a pair expression has more than two segments.
	ErrTooManyParts = errors.New("too many parts")
	// ErrNotFinite is returned by ParseFinite for NaN and infinite values.
	ErrNotFinite = errors.New("value is not finite")
)

// SegmentError reports a segment of a pair which could not be parsed as a number.
type SegmentError struct {
	Index   int // 0 for the first segment, 1 for the second
	Segment string
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d (%q): %s", e.Index+1, e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

// SplitPair splits s on runs of separator runes and parses exactly two segments with parse.
// A run of consecutive separators counts as a single split.
func SplitPair[T any](s string, isSep func(rune) bool, parse func(string) (T, error)) (first, second T, err error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), isSep)
	switch {
	case len(parts) < 2:
		return first, second, ErrMissingSegment
	case len(parts) > 2:
		return first, second, ErrTooManyParts
	}
	if first, err = parse(strings.TrimSpace(parts[0])); err != nil {
		return first, second, &SegmentError{0, parts[0], err}
	}
	if second, err = parse(strings.TrimSpace(parts[1])); err != nil {
		return first, second, &SegmentError{1, parts[1], err}
	}
	return first, second, nil
}

// ParseFinite parses a float64 and rejects NaN and ±Inf.
func ParseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// isDecimalRune returns whether r may appear in a decimal float literal.
func isDecimalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+', r == 'e', r == 'E', r == '_':
		return true
	default:
		return false
	}
}
