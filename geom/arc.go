package geom

import (
	"math"
	"math/cmplx"

	"github.com/go-pcb/planefill/clipper"
)

// ArcTolerance is the maximum deviation, in nanometres, allowed between a
// flattened arc's polyline and the ideal curve it approximates.
const ArcTolerance Length = 5000

// FlattenArc returns the straight-segment approximation of the edge from
// from to to, including both endpoints. If from.Angle is zero the result is
// just the two endpoints; otherwise it is a polyline approximating the
// circular arc subtending from.Angle degrees (positive meaning
// counter-clockwise), with no point farther than ArcTolerance from the true
// arc.
func FlattenArc(from, to Vertex) clipper.Path64 {
	start := clipper.Point64{X: from.Position.X, Y: from.Position.Y}
	end := clipper.Point64{X: to.Position.X, Y: to.Position.Y}
	if from.Angle.IsZero() || start == end {
		return clipper.Path64{start, end}
	}

	theta := float64(from.Angle) * math.Pi / 180
	a := complex(float64(from.Position.X), float64(from.Position.Y))
	b := complex(float64(to.Position.X), float64(to.Position.Y))

	e := cmplx.Exp(complex(0, theta))
	denom := 1 - e
	if cmplx.Abs(denom) < 1e-9 {
		return clipper.Path64{start, end}
	}
	center := (b - a*e) / denom
	radius := cmplx.Abs(a - center)
	if radius <= 0 {
		return clipper.Path64{start, end}
	}

	startAngle := cmplx.Phase(a - center)
	steps := arcStepCount(radius, float64(ArcTolerance), math.Abs(theta))

	path := make(clipper.Path64, 0, steps+1)
	for s := 0; s <= steps; s++ {
		ang := startAngle + theta*float64(s)/float64(steps)
		p := center + complex(radius, 0)*cmplx.Exp(complex(0, ang))
		path = append(path, clipper.Point64{
			X: int64(math.Round(real(p))),
			Y: int64(math.Round(imag(p))),
		})
	}
	path[0] = start
	path[len(path)-1] = end
	return path
}

// arcStepCount returns the number of segments needed to flatten an arc of
// the given radius and angular span within tolerance, using the chord
// deviation bound steps = ceil(angle / (2*acos(1 - tolerance/radius))),
// equivalent to the scenario bound ceil(arc_length / (2*sqrt(2*tolerance*radius))).
func arcStepCount(radius, tolerance, angle float64) int {
	if radius <= 0 || angle <= 0 {
		return 1
	}
	ratio := 1 - tolerance/radius
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		return 1
	}
	stepAngle := 2 * math.Acos(ratio)
	if stepAngle <= 0 {
		return 1
	}
	steps := int(math.Ceil(angle / stepAngle))
	if steps < 1 {
		steps = 1
	}
	if steps > 2000 {
		steps = 2000
	}
	return steps
}
