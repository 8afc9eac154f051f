// Package geom provides the integer-nanometre 2-D geometry primitives the
// plane-fill pipeline shares: arc-bulge vertices and paths, conversion to
// and from the flat integer paths the clipper package operates on, and the
// orientation discipline the boolean engine requires.
package geom

import "github.com/go-pcb/planefill/clipper"

// Length is a distance in integer nanometres.
type Length int64

// Point is a location in integer nanometres.
type Point struct {
	X, Y int64
}

// Angle is a bulge angle in degrees, positive meaning counter-clockwise.
// A zero Angle marks a straight edge.
type Angle float64

// IsZero reports whether the angle represents a straight edge.
func (a Angle) IsZero() bool { return a == 0 }

// Vertex is one point of a Path, plus the bulge angle of the edge that
// leaves it toward the next vertex.
type Vertex struct {
	Position Point
	Angle    Angle
}

// Path is an ordered sequence of Vertices, optionally closed. If Closed,
// the last edge implicitly joins the last vertex back to the first.
type Path struct {
	Vertices []Vertex
	Closed   bool
}

// NewClosedPath builds a closed path from plain points with no arc bulges.
func NewClosedPath(points ...Point) Path {
	vs := make([]Vertex, len(points))
	for i, p := range points {
		vs[i] = Vertex{Position: p}
	}
	return Path{Vertices: vs, Closed: true}
}

// ToIntPath flattens every arc edge to straight segments (see FlattenArc)
// and normalizes orientation for closed paths: the boolean engine requires
// negative (CW) orientation in this package's frame, so a positively
// oriented result is reversed.
func (p Path) ToIntPath() clipper.Path64 {
	if len(p.Vertices) == 0 {
		return nil
	}
	var out clipper.Path64
	n := len(p.Vertices)
	last := n
	if !p.Closed {
		last = n - 1
	}
	for i := 0; i < last; i++ {
		from := p.Vertices[i]
		to := p.Vertices[(i+1)%n]
		seg := FlattenArc(from, to)
		if i > 0 && len(seg) > 0 {
			// Subsequent edges skip their own start vertex: it was
			// already emitted as the previous edge's end vertex.
			seg = seg[1:]
		}
		if p.Closed && i == last-1 && len(seg) > 0 {
			// The wrap-around edge's end vertex duplicates the path's
			// own start point; integer paths are not explicitly closed.
			seg = seg[:len(seg)-1]
		}
		out = append(out, seg...)
	}
	if p.Closed && len(out) >= 3 && clipper.IsPositive64(out) {
		out = clipper.Reverse64(out)
	}
	return out
}

// FromIntPath wraps a flat integer path back into a Path with no arc bulges.
func FromIntPath(ip clipper.Path64) Path {
	vs := make([]Vertex, len(ip))
	for i, pt := range ip {
		vs[i] = Vertex{Position: Point{X: pt.X, Y: pt.Y}}
	}
	return Path{Vertices: vs, Closed: true}
}

// ToIntPaths flattens a slice of paths.
func ToIntPaths(paths []Path) clipper.Paths64 {
	out := make(clipper.Paths64, 0, len(paths))
	for _, p := range paths {
		if ip := p.ToIntPath(); ip != nil {
			out = append(out, ip)
		}
	}
	return out
}

// FromIntPaths wraps a slice of flat integer paths back into Paths.
func FromIntPaths(paths clipper.Paths64) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = FromIntPath(p)
	}
	return out
}

// Circle returns a closed Path approximating a circle of the given radius
// centered at c using two 180-degree arc edges.
func Circle(c Point, radius Length) Path {
	left := Point{X: c.X - int64(radius), Y: c.Y}
	right := Point{X: c.X + int64(radius), Y: c.Y}
	return Path{
		Vertices: []Vertex{
			{Position: left, Angle: 180},
			{Position: right, Angle: 180},
		},
		Closed: true,
	}
}

// Rectangle returns a closed rectangular Path with corners (x0,y0)-(x1,y1).
func Rectangle(x0, y0, x1, y1 int64) Path {
	return NewClosedPath(
		Point{x0, y0},
		Point{x1, y0},
		Point{x1, y1},
		Point{x0, y1},
	)
}
