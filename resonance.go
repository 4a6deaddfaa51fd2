package milkrun

import (
	"errors"
	"fmt"
)

// ErrImpossible is returned when no orbit achieves the requested resonance.
var ErrImpossible = errors.New("resonance is impossible")

// Element is the orbital element that is changed to achieve a resonance.
type Element uint8

const (
	// Periapsis is lowered when the period must shrink.
	Periapsis Element = iota + 1
	// Apoapsis is raised when the period must grow.
	Apoapsis
)

func (e Element) String() string {
	switch e {
	case Periapsis:
		return "periapsis"
	case Apoapsis:
		return "apoapsis"
	default:
		panic("unknown element")
	}
}

// Result is the new value of an element, in the datum of the orbit it was computed from.
type Result struct {
	Element Element
	Value   float64
}

// String returns the value with two decimals.
func (r Result) String() string {
	return fmt.Sprintf("%.2f", r.Value)
}

// Resonate returns the change to the orbit which achieves the resonance of the ratio.
// Ratios greater than one raise the apoapsis, all others lower the periapsis.
func Resonate(r Ratio, o Orbit) (Result, error) {
	element, compute := Periapsis, o.ResonantPeriapsis
	if r.IsGreaterThanOne() {
		element, compute = Apoapsis, o.ResonantApoapsis
	}
	v, ok := compute(r.Resonance())
	if !ok {
		return Result{}, fmt.Errorf("%w: %s of %s with ratio %s", ErrImpossible, element, o, r)
	}
	return Result{element, v}, nil
}
