package milkrun

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	meterε = 1e-3 // 1 mm
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// metersEqual returns whether two distances are within a millimeter.
func metersEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, meterε)
}
