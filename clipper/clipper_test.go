package clipper

import "testing"

func rect(left, top, right, bottom int64) Path64 {
	return Path64{{left, top}, {right, top}, {right, bottom}, {left, bottom}}
}

func TestUnion64DisjointRectangles(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(20, 0, 30, 10)
	out, err := Union64(Paths64{a}, Paths64{b}, NonZero)
	if err != nil {
		t.Fatalf("Union64: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 disjoint contours, got %d", len(out))
	}
}

func TestUnion64OverlappingRectangles(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(5, 5, 15, 15)
	out, err := Union64(Paths64{a}, Paths64{b}, NonZero)
	if err != nil {
		t.Fatalf("Union64: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 merged contour, got %d", len(out))
	}
	area := absArea(out[0])
	want := 175.0 // two 10x10 squares overlapping in a 5x5 corner
	if area != want {
		t.Errorf("area = %v, want %v", area, want)
	}
}

func TestIntersect64Rectangles(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(5, 5, 15, 15)
	out, err := Intersect64(Paths64{a}, Paths64{b}, NonZero)
	if err != nil {
		t.Fatalf("Intersect64: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 contour, got %d", len(out))
	}
	if absArea(out[0]) != 25 {
		t.Errorf("area = %v, want 25", absArea(out[0]))
	}
}

func TestDifference64PunchesHole(t *testing.T) {
	outer := rect(0, 0, 100, 100)
	hole := rect(40, 40, 60, 60)
	out, err := Difference64(Paths64{outer}, Paths64{hole}, EvenOdd)
	if err != nil {
		t.Fatalf("Difference64: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want outer + hole as two contours, got %d", len(out))
	}
	total := absArea(out[0]) + absArea(out[1])
	if total != 10400 {
		t.Errorf("combined area = %v, want 10400 (100x100 outer plus 20x20 hole)", total)
	}
}

func TestXor64NonOverlappingEqualsUnion(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(20, 0, 30, 10)
	out, err := Xor64(Paths64{a}, Paths64{b}, NonZero)
	if err != nil {
		t.Fatalf("Xor64: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 contours, got %d", len(out))
	}
}

func TestBooleanOp64InvalidFillRule(t *testing.T) {
	_, err := BooleanOp64(Union, FillRule(99), EvenOdd, Paths64{rect(0, 0, 1, 1)}, nil)
	if err != ErrInvalidFillRule {
		t.Fatalf("err = %v, want ErrInvalidFillRule", err)
	}
}

func TestExecuteTreeNestsHole(t *testing.T) {
	outer := rect(0, 0, 100, 100)
	hole := rect(40, 40, 60, 60)
	tree, err := BooleanOpTree64(Difference, EvenOdd, EvenOdd, Paths64{outer}, Paths64{hole})
	if err != nil {
		t.Fatalf("BooleanOpTree64: %v", err)
	}
	if tree.Count() != 1 {
		t.Fatalf("want 1 top-level outline, got %d", tree.Count())
	}
	top := tree.Children()[0]
	if top.Count() != 1 {
		t.Fatalf("want 1 nested hole, got %d", top.Count())
	}
	if !top.Children()[0].IsHole() {
		t.Error("nested contour should report IsHole() true")
	}
}
