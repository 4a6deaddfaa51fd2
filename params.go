package milkrun

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPeriod is returned for a period which is not strictly positive.
var ErrInvalidPeriod = errors.New("period must be positive")

// Param names a parameter of a resonance computation.
type Param uint8

const (
	// ParamAltitude is the altitude expression.
	ParamAltitude Param = iota + 1
	// ParamPeriod is the orbital period.
	ParamPeriod
	// ParamRatio is the resonance ratio.
	ParamRatio
	// ParamBody is the orbited body.
	ParamBody
	// ParamOrbit is the orbit built from the other parameters.
	ParamOrbit
)

func (p Param) String() string {
	switch p {
	case ParamAltitude:
		return "altitude"
	case ParamPeriod:
		return "period"
	case ParamRatio:
		return "ratio"
	case ParamBody:
		return "body"
	case ParamOrbit:
		return "orbit"
	default:
		panic("unknown parameter")
	}
}

// BuildError is returned when the parameters cannot be assembled.
type BuildError struct {
	Param Param
	Err   error
}

func (e *BuildError) Error() string {
	switch e.Param {
	case ParamPeriod:
		return "bad orbital period: " + e.Err.Error()
	default:
		return e.Err.Error()
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Params are the raw parameters of a resonance computation. An empty Body means the default body.
type Params struct {
	Altitude, Period, Ratio, Body string
}

// Build parses the parameters against the built-in bodies.
func Build(p Params) (Ratio, Orbit, error) {
	return NewCatalog().Build(p)
}

// Build parses the parameters and returns the ratio and the orbit it applies to.
func (c *Catalog) Build(p Params) (Ratio, Orbit, error) {
	alt, err := ParseAltitude(p.Altitude)
	if err != nil {
		return Ratio{}, Orbit{}, &BuildError{ParamAltitude, err}
	}
	period, err := ParseFinite(strings.TrimSpace(p.Period))
	if err != nil {
		return Ratio{}, Orbit{}, &BuildError{ParamPeriod, err}
	}
	if period <= 0 {
		return Ratio{}, Orbit{}, &BuildError{ParamPeriod, fmt.Errorf("%w, got %s", ErrInvalidPeriod, p.Period)}
	}
	ratio, err := ParseRatio(p.Ratio)
	if err != nil {
		return Ratio{}, Orbit{}, &BuildError{ParamRatio, err}
	}
	body, err := c.Resolve(p.Body)
	if err != nil {
		return Ratio{}, Orbit{}, &BuildError{ParamBody, err}
	}
	orbit, err := body.Orbit(alt, period)
	if err != nil {
		return Ratio{}, Orbit{}, &BuildError{ParamOrbit, err}
	}
	return ratio, orbit, nil
}
