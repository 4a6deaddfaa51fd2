package milkrun

import (
	"fmt"
	"strconv"
)

func isRatioSep(r rune) bool { return r == ':' }

// Ratio is the desired period to current period scaling, written "left:right".
// Zero and negative components are not rejected here.
type Ratio struct {
	Left, Right float64
}

// Resonance returns the scalar period factor.
func (r Ratio) Resonance() float64 {
	return r.Left / r.Right
}

// IsGreaterThanOne returns whether this ratio lengthens the period, in which case the apoapsis
// must be raised instead of lowering the periapsis.
func (r Ratio) IsGreaterThanOne() bool {
	return r.Left > r.Right
}

func (r Ratio) String() string {
	return strconv.FormatFloat(r.Left, 'f', -1, 64) + ":" + strconv.FormatFloat(r.Right, 'f', -1, 64)
}

// WholeRatio is a ratio of two integers.
type WholeRatio struct {
	Numer, Denom int64
}

// Ratio returns the floating point equivalent.
func (w WholeRatio) Ratio() Ratio {
	return Ratio{float64(w.Numer), float64(w.Denom)}
}

// Reduced returns the ratio in lowest terms. A zero ratio is returned as is.
func (w WholeRatio) Reduced() WholeRatio {
	g := gcd(w.Numer, w.Denom)
	if g == 0 {
		return w
	}
	return WholeRatio{w.Numer / g, w.Denom / g}
}

func (w WholeRatio) String() string {
	return fmt.Sprintf("%d:%d", w.Numer, w.Denom)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// RatioError is returned when a ratio expression cannot be parsed.
type RatioError struct {
	Input string
	Err   error
}

func (e *RatioError) Error() string {
	return fmt.Sprintf("invalid ratio %q: %s", e.Input, e.Err)
}

func (e *RatioError) Unwrap() error {
	return e.Err
}

// ParseRatio parses a "left:right" ratio.
func ParseRatio(s string) (Ratio, error) {
	l, r, err := SplitPair(s, isRatioSep, ParseFinite)
	if err != nil {
		return Ratio{}, &RatioError{s, err}
	}
	return Ratio{l, r}, nil
}

// ParseWholeRatio parses a "numer:denom" ratio of integers.
func ParseWholeRatio(s string) (WholeRatio, error) {
	n, d, err := SplitPair(s, isRatioSep, parseInt64)
	if err != nil {
		return WholeRatio{}, &RatioError{s, err}
	}
	return WholeRatio{n, d}, nil
}
