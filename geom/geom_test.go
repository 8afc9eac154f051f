package geom

import (
	"math"
	"testing"

	"github.com/go-pcb/planefill/clipper"
)

func TestToIntPathStraightRectangle(t *testing.T) {
	p := Rectangle(0, 0, 10000, 5000)
	ip := p.ToIntPath()
	if len(ip) != 4 {
		t.Fatalf("len = %d, want 4", len(ip))
	}
}

func TestToIntPathNormalizesOrientation(t *testing.T) {
	// Deliberately CCW-wound (positive area) rectangle.
	p := NewClosedPath(Point{0, 5000}, Point{0, 0}, Point{10000, 0}, Point{10000, 5000})
	ip := p.ToIntPath()
	if len(ip) != 4 {
		t.Fatalf("len = %d, want 4", len(ip))
	}
	if clipper.IsPositive64(ip) {
		t.Errorf("area = %v, want negative (CW) orientation after ToIntPath", clipper.Area64(ip))
	}
}

func TestFlattenArcStaysWithinTolerance(t *testing.T) {
	from := Vertex{Position: Point{X: -10000, Y: 0}, Angle: 180}
	to := Vertex{Position: Point{X: 10000, Y: 0}}
	path := FlattenArc(from, to)
	if len(path) < 3 {
		t.Fatalf("expected a flattened polyline with interior points, got %d", len(path))
	}
	radius := 10000.0
	for _, pt := range path {
		dist := math.Hypot(float64(pt.X), float64(pt.Y))
		dev := math.Abs(dist - radius)
		if dev > float64(ArcTolerance)+1 {
			t.Errorf("point %+v deviates %v nm from ideal arc, want <= %v", pt, dev, ArcTolerance)
		}
	}
}

func TestFlattenArcZeroAngleIsStraight(t *testing.T) {
	from := Vertex{Position: Point{X: 0, Y: 0}}
	to := Vertex{Position: Point{X: 1000, Y: 1000}}
	path := FlattenArc(from, to)
	if len(path) != 2 {
		t.Fatalf("len = %d, want 2 for a straight edge", len(path))
	}
}

func TestCircleFlattensWithinTolerance(t *testing.T) {
	c := Circle(Point{X: 0, Y: 0}, 50000)
	ip := c.ToIntPath()
	for _, pt := range ip {
		dist := math.Hypot(float64(pt.X), float64(pt.Y))
		if math.Abs(dist-50000) > float64(ArcTolerance)+1 {
			t.Errorf("circle point %+v at radius %v, want ~50000", pt, dist)
		}
	}
}
