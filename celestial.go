package milkrun

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/soniakeys/meeus/v3/globe"
)

// ErrInvalidRadius is returned for a negative body radius.
var ErrInvalidRadius = errors.New("body radius must not be negative")

// Body is an orbited celestial body. Radius is in meters from its center of mass.
type Body struct {
	Name   string
	Radius float64
}

// String implements the Stringer interface.
func (b Body) String() string {
	return fmt.Sprintf("%s (r=%.0f m)", b.Name, b.Radius)
}

// Orbit returns the orbit at the provided altitude above this body, with period in hours.
func (b Body) Orbit(alt Altitude, period float64) (Orbit, error) {
	return newOrbit(alt.Apoapsis+b.Radius, alt.Periapsis+b.Radius, period, SurfaceRelative(b.Radius))
}

// UnknownBodyError is returned when a body is neither a radius nor a known name.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return "body not found: " + e.Name
}

/* Definitions */

// Kerbin is home, and the default body.
var Kerbin = Body{"Kerbin", 600e3}

// Earth uses the IAU 1976 equatorial radius.
var Earth = Body{"Earth", globe.Earth76.Er * 1e3}

var builtinBodies = []Body{
	{"Kerbol", 261600e3},
	{"Moho", 250e3},
	{"Eve", 700e3},
	{"Gilly", 13e3},
	Kerbin,
	{"Mun", 200e3},
	{"Minmus", 60e3},
	{"Duna", 320e3},
	{"Ike", 130e3},
	{"Dres", 138e3},
	{"Jool", 6000e3},
	{"Laythe", 500e3},
	{"Vall", 300e3},
	{"Tylo", 600e3},
	{"Bop", 65e3},
	{"Pol", 44e3},
	{"Eeloo", 210e3},
	Earth,
}

// Catalog resolves body references to bodies.
type Catalog struct {
	bodies map[string]Body
	def    Body
}

// NewCatalog returns a catalog of the built-in bodies with Kerbin as the default.
func NewCatalog() *Catalog {
	c := &Catalog{bodies: make(map[string]Body, len(builtinBodies)), def: Kerbin}
	for _, b := range builtinBodies {
		c.Add(b)
	}
	return c
}

// Add adds or replaces a body, and returns whether one was replaced.
func (c *Catalog) Add(b Body) bool {
	key := strings.ToLower(b.Name)
	_, replaced := c.bodies[key]
	c.bodies[key] = b
	if strings.ToLower(c.def.Name) == key {
		c.def = b
	}
	return replaced
}

// Lookup returns the body of that name, ignoring case.
func (c *Catalog) Lookup(name string) (Body, error) {
	b, ok := c.bodies[strings.ToLower(name)]
	if !ok {
		return Body{}, &UnknownBodyError{name}
	}
	return b, nil
}

// Default returns the body used when none is requested.
func (c *Catalog) Default() Body {
	return c.def
}

// SetDefault sets the default body by name.
func (c *Catalog) SetDefault(name string) error {
	b, err := c.Lookup(name)
	if err != nil {
		return err
	}
	c.def = b
	return nil
}

// Names returns the lowercase names of all known bodies, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.bodies))
	for name := range c.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the body referenced by text: the default body if empty, a body of that radius
// if it is a number, otherwise the body of that name.
func (c *Catalog) Resolve(text string) (Body, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return c.def, nil
	}
	if radius, err := ParseFinite(text); err == nil {
		if radius < 0 {
			return Body{}, fmt.Errorf("%s: %w", text, ErrInvalidRadius)
		}
		return Body{text, radius}, nil
	}
	return c.Lookup(text)
}
