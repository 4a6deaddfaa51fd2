package milkrun

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// semimajor axes within this relative distance are considered equal
	resonanceε = 1e-12
)

// ErrInvalidOrbit is returned when the apsides or period do not describe an orbit.
var ErrInvalidOrbit = errors.New("invalid orbit")

// Datum defines what the altitudes returned by an orbit are measured from.
// The zero value is Absolute.
type Datum struct {
	surface bool
	radius  float64
}

// Absolute measures from the center of mass of the orbited body.
var Absolute = Datum{}

// SurfaceRelative measures from the surface of a body of the provided radius.
func SurfaceRelative(radius float64) Datum {
	return Datum{true, radius}
}

// Radius returns the body radius, and false for the absolute datum.
func (d Datum) Radius() (float64, bool) {
	return d.radius, d.surface
}

// floor returns the lowest absolute distance a periapsis may have.
func (d Datum) floor() float64 {
	return d.radius
}

// altitude converts an absolute distance to this datum.
func (d Datum) altitude(r float64) float64 {
	return r - d.radius
}

func (d Datum) String() string {
	if !d.surface {
		return "absolute"
	}
	return fmt.Sprintf("surface(r=%.0f m)", d.radius)
}

// Orbit is an orbit described by its apoapsis, periapsis, and period.
//
// Apoapsis and periapsis are absolute distances in meters from the center of mass of the orbited
// body, and the period is in hours. The datum only changes how results are reported.
type Orbit struct {
	ap, pe, period float64
	datum          Datum
}

// NewAbsoluteOrbit returns an orbit which is not attached to any body.
func NewAbsoluteOrbit(ap, pe, period float64) (Orbit, error) {
	return newOrbit(ap, pe, period, Absolute)
}

func newOrbit(ap, pe, period float64, datum Datum) (Orbit, error) {
	for _, v := range []float64{ap, pe, period, datum.radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Orbit{}, fmt.Errorf("%w: non finite value", ErrInvalidOrbit)
		}
	}
	switch {
	case period <= 0:
		return Orbit{}, fmt.Errorf("%w: period must be positive, got %g h", ErrInvalidOrbit, period)
	case ap < pe:
		return Orbit{}, fmt.Errorf("%w: apoapsis %.2f m is below periapsis %.2f m", ErrInvalidOrbit, datum.altitude(ap), datum.altitude(pe))
	case pe <= 0:
		return Orbit{}, fmt.Errorf("%w: periapsis must be above the center of mass", ErrInvalidOrbit)
	case pe < datum.floor():
		return Orbit{}, fmt.Errorf("%w: periapsis %.2f m is below the surface", ErrInvalidOrbit, datum.altitude(pe))
	}
	return Orbit{ap, pe, period, datum}, nil
}

// Apoapsis returns the absolute apoapsis.
func (o Orbit) Apoapsis() float64 {
	return o.ap
}

// Periapsis returns the absolute periapsis.
func (o Orbit) Periapsis() float64 {
	return o.pe
}

// Period returns the period in hours.
func (o Orbit) Period() float64 {
	return o.period
}

// Datum returns the datum of the altitudes computed from this orbit.
func (o Orbit) Datum() Datum {
	return o.datum
}

// Altitude converts an absolute distance to the datum of this orbit.
func (o Orbit) Altitude(r float64) float64 {
	return o.datum.altitude(r)
}

// SemimajorAxis returns the semimajor axis.
func (o Orbit) SemimajorAxis() float64 {
	return (o.ap + o.pe) / 2
}

// DesiredSemimajorAxis returns the semimajor axis of an orbit around the same body whose period is
// this period scaled by resonance. It relies on a³/T² being constant for a given body.
func (o Orbit) DesiredSemimajorAxis(resonance float64) float64 {
	relationship := math.Pow(o.SemimajorAxis(), 3) / math.Pow(o.period, 2)
	desiredPeriod := o.period * resonance
	return math.Cbrt(relationship * desiredPeriod * desiredPeriod)
}

// ResonantPeriapsis returns the periapsis needed to achieve the resonance while keeping the
// apoapsis, and false if there is none: the period must not grow, and the periapsis must stay
// above the surface (or the center of mass for an absolute orbit).
func (o Orbit) ResonantPeriapsis(resonance float64) (float64, bool) {
	a := o.SemimajorAxis()
	desired := o.DesiredSemimajorAxis(resonance)
	if !finite(desired) {
		return 0, false
	}
	if desired > a && !scalar.EqualWithinRel(desired, a, resonanceε) {
		return 0, false
	}
	pe := o.pe - (a*2 - desired*2)
	if pe <= o.datum.floor() {
		return 0, false
	}
	return o.datum.altitude(pe), true
}

// ResonantApoapsis returns the apoapsis needed to achieve the resonance while keeping the
// periapsis, and false if the resonance would shorten the period.
func (o Orbit) ResonantApoapsis(resonance float64) (float64, bool) {
	a := o.SemimajorAxis()
	desired := o.DesiredSemimajorAxis(resonance)
	if !finite(desired) {
		return 0, false
	}
	if desired < a && !scalar.EqualWithinRel(desired, a, resonanceε) {
		return 0, false
	}
	ap := o.ap - (a*2 - desired*2)
	return o.datum.altitude(ap), true
}

// String implements the stringer interface.
func (o Orbit) String() string {
	return fmt.Sprintf("ap=%.1f pe=%.1f T=%.3fh %s", o.datum.altitude(o.ap), o.datum.altitude(o.pe), o.period, o.datum)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
