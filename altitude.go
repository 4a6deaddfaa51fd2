package milkrun

import (
	"fmt"
	"strings"
)

// SynchronousAltitude is the altitude in meters of a Kerbin synchronous orbit.
const SynchronousAltitude = 2_863_330.0

var synchronousNames = map[string]bool{
	"keosynchronous": true,
	"keostationary":  true,
	"geosynchronous": true,
	"geostationary":  true,
	"synchronous":    true,
}

// Altitude is an apoapsis and periapsis pair in meters above the surface of the orbited body.
type Altitude struct {
	Apoapsis, Periapsis float64
}

// Circular returns whether both apsides are at the same altitude.
func (a Altitude) Circular() bool {
	return a.Apoapsis == a.Periapsis
}

func (a Altitude) String() string {
	return fmt.Sprintf("%.0fx%.0f", a.Apoapsis, a.Periapsis)
}

// AltitudeError is returned when an altitude expression cannot be parsed.
type AltitudeError struct {
	Input string
	Err   error
}

func (e *AltitudeError) Error() string {
	return fmt.Sprintf("invalid altitude %q: %s", e.Input, e.Err)
}

func (e *AltitudeError) Unwrap() error {
	return e.Err
}

// ParseAltitude parses an altitude expression, which is one of:
// a single value (circular orbit), a synchronous orbit name, or an "APxPE" pair.
// The pair is kept in the provided order: the first value is always the apoapsis.
func ParseAltitude(s string) (Altitude, error) {
	trimmed := strings.TrimSpace(s)
	if v, err := ParseFinite(trimmed); err == nil {
		return Altitude{v, v}, nil
	}
	if synchronousNames[strings.ToLower(trimmed)] {
		return Altitude{SynchronousAltitude, SynchronousAltitude}, nil
	}
	ap, pe, err := SplitPair(trimmed, func(r rune) bool { return !isDecimalRune(r) }, ParseFinite)
	if err != nil {
		return Altitude{}, &AltitudeError{s, err}
	}
	return Altitude{ap, pe}, nil
}
