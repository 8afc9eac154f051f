package clipper

import "testing"

func TestInflatePaths64GrowsRectangle(t *testing.T) {
	r := rect(0, 0, 1000, 1000)
	out, err := InflatePaths64(Paths64{r}, 100, Round, ClosedPolygon)
	if err != nil {
		t.Fatalf("InflatePaths64: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 contour, got %d", len(out))
	}
	b := Bounds64(out[0])
	if b.Left > -50 || b.Top > -50 || b.Right < 1050 || b.Bottom < 1050 {
		t.Errorf("inflated bounds %+v do not look grown outward", b)
	}
}

func TestInflatePaths64ErodesInward(t *testing.T) {
	r := rect(0, 0, 1000, 1000)
	out, err := InflatePaths64(Paths64{r}, -100, Round, ClosedPolygon)
	if err != nil {
		t.Fatalf("InflatePaths64: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 contour, got %d", len(out))
	}
	b := Bounds64(out[0])
	if b.Left < 50 || b.Top < 50 || b.Right > 950 || b.Bottom > 950 {
		t.Errorf("eroded bounds %+v do not look shrunk inward", b)
	}
}

func TestInflatePaths64OverErosionCollapsesToEmpty(t *testing.T) {
	// A 100x100 square eroded by 1000 (far more than its half-width of 50)
	// must vanish rather than survive as an inverted artifact of
	// the raw offset folding back on itself.
	r := rect(0, 0, 100, 100)
	out, err := InflatePaths64(Paths64{r}, -1000, Round, ClosedPolygon)
	if err != nil {
		t.Fatalf("InflatePaths64: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("want empty result from over-erosion, got %d contour(s)", len(out))
	}
}

func TestInflatePaths64InvalidJoinType(t *testing.T) {
	_, err := InflatePaths64(Paths64{rect(0, 0, 10, 10)}, 1, JoinType(99), ClosedPolygon)
	if err != ErrInvalidJoinType {
		t.Fatalf("err = %v, want ErrInvalidJoinType", err)
	}
}

func TestArcStepCountBoundedByTolerance(t *testing.T) {
	steps := arcStepCount(50000, 5000, 3.14159265) // half circle
	if steps < 1 || steps > 50 {
		t.Errorf("steps = %d, expected a small bounded count", steps)
	}
}
