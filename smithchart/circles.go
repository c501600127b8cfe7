package smithchart

import "math"

// Circle is a center and radius in the Gamma plane.
type Circle struct {
	Center complex128
	Radius float64
}

// ConstantResistanceCircle returns the constant-normalized-resistance
// circle: center r/(r+1) on the real axis, radius 1/(r+1).
func ConstantResistanceCircle(rNormalized float64) Circle {
	return Circle{
		Center: complex(rNormalized/(rNormalized+1.0), 0),
		Radius: 1.0 / (rNormalized + 1.0),
	}
}

// ConstantReactanceCircle returns the constant-normalized-reactance
// circle: center (1, 1/x), radius |1/x|.
func ConstantReactanceCircle(xNormalized float64) Circle {
	return Circle{
		Center: complex(1.0, 1.0/xNormalized),
		Radius: math.Abs(1.0 / xNormalized),
	}
}

// ConstantConductanceCircle returns the admittance-plane mirror of
// ConstantResistanceCircle: center -g/(g+1), radius 1/(g+1).
func ConstantConductanceCircle(gNormalized float64) Circle {
	return Circle{
		Center: complex(-gNormalized/(gNormalized+1.0), 0),
		Radius: 1.0 / (gNormalized + 1.0),
	}
}

// ConstantSusceptanceCircle returns the admittance-plane mirror of
// ConstantReactanceCircle: center (-1, -1/b), radius |1/b|.
func ConstantSusceptanceCircle(bNormalized float64) Circle {
	return Circle{
		Center: complex(-1.0, -1.0/bNormalized),
		Radius: math.Abs(1.0 / bNormalized),
	}
}

// VSWRCircle returns the constant-VSWR circle centered at the origin,
// radius (vswr-1)/(vswr+1).
func VSWRCircle(vswr float64) Circle {
	return Circle{Center: 0, Radius: (vswr - 1.0) / (vswr + 1.0)}
}

// Trace samples n points evenly around the circle, starting at angle 0.
func (c Circle) Trace(n int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		gamma := c.Center + complex(c.Radius*math.Cos(theta), c.Radius*math.Sin(theta))
		points = appendPoint(points, gamma)
	}
	return points
}
